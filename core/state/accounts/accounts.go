package accounts

import (
	"bytes"
	"fmt"
	"math/big"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/StakeportTeam/stakeport-go-node/core/state/bus"
	"github.com/StakeportTeam/stakeport-go-node/core/types"
	"github.com/cosmos/iavl"
	"github.com/ethereum/go-ethereum/rlp"
)

const mainPrefix = byte('a')

type RAccounts interface {
	GetBalance(address types.Address) *big.Int
	Export(state *types.AppState)
}

// Accounts is the single-asset balance book: depositor accounts plus the
// reserved custody account. Custody balance changes are reported to the
// invariant checker.
type Accounts struct {
	list  map[types.Address]*Model
	dirty map[types.Address]struct{}

	db atomic.Value

	bus *bus.Bus

	lock sync.RWMutex
}

func NewAccounts(stateBus *bus.Bus, db *iavl.ImmutableTree) *Accounts {
	immutableTree := atomic.Value{}
	if db != nil {
		immutableTree.Store(db)
	}

	return &Accounts{
		bus:   stateBus,
		db:    immutableTree,
		list:  map[types.Address]*Model{},
		dirty: map[types.Address]struct{}{},
	}
}

func (a *Accounts) immutableTree() *iavl.ImmutableTree {
	db := a.db.Load()
	if db == nil {
		return nil
	}
	return db.(*iavl.ImmutableTree)
}

func (a *Accounts) SetImmutableTree(immutableTree *iavl.ImmutableTree) {
	a.db.Store(immutableTree)
}

func (a *Accounts) Commit(db *iavl.MutableTree, version int64) error {
	dirty := a.getOrderedDirty()
	for _, address := range dirty {
		account := a.getFromMap(address)
		path := append([]byte{mainPrefix}, address.Bytes()...)

		a.lock.Lock()
		delete(a.dirty, address)
		a.lock.Unlock()

		account.lock.RLock()
		data, err := rlp.EncodeToBytes(account)
		account.lock.RUnlock()
		if err != nil {
			return fmt.Errorf("can't encode account at %s: %v", address.String(), err)
		}

		db.Set(path, data)
	}

	return nil
}

func (a *Accounts) GetBalance(address types.Address) *big.Int {
	account := a.get(address)
	if account == nil {
		return big.NewInt(0)
	}

	return account.getBalance()
}

func (a *Accounts) AddBalance(address types.Address, amount *big.Int) {
	account := a.getOrNew(address)
	account.setBalance(big.NewInt(0).Add(account.getBalance(), amount))

	if address == types.CustodyAddress {
		a.bus.Checker().AddCustody(amount)
	}
}

func (a *Accounts) SubBalance(address types.Address, amount *big.Int) {
	a.AddBalance(address, big.NewInt(0).Neg(amount))
}

func (a *Accounts) Export(state *types.AppState) {
	a.immutableTree().IterateRange([]byte{mainPrefix}, []byte{mainPrefix + 1}, true, func(key []byte, value []byte) bool {
		address := types.BytesToAddress(key[1:])

		account := a.get(address)
		if account != nil && account.getBalance().Sign() != 0 {
			state.Accounts = append(state.Accounts, types.Account{
				Address: address,
				Balance: account.getBalance().String(),
			})
		}

		return false
	})

	sort.SliceStable(state.Accounts, func(i, j int) bool {
		return bytes.Compare(state.Accounts[i].Address.Bytes(), state.Accounts[j].Address.Bytes()) == 1
	})
}

func (a *Accounts) getOrNew(address types.Address) *Model {
	account := a.get(address)
	if account == nil {
		account = &Model{
			Balance:   big.NewInt(0),
			address:   address,
			markDirty: a.markDirty,
		}
		a.setToMap(address, account)
	}

	return account
}

func (a *Accounts) get(address types.Address) *Model {
	if account := a.getFromMap(address); account != nil {
		return account
	}

	path := append([]byte{mainPrefix}, address.Bytes()...)
	_, enc := a.immutableTree().Get(path)
	if len(enc) == 0 {
		return nil
	}

	account := new(Model)
	if err := rlp.DecodeBytes(enc, account); err != nil {
		panic(fmt.Sprintf("failed to decode account at address %s: %s", address.String(), err))
	}

	account.address = address
	account.markDirty = a.markDirty
	a.setToMap(address, account)

	return account
}

func (a *Accounts) getFromMap(address types.Address) *Model {
	a.lock.RLock()
	defer a.lock.RUnlock()

	return a.list[address]
}

func (a *Accounts) setToMap(address types.Address, model *Model) {
	a.lock.Lock()
	defer a.lock.Unlock()

	a.list[address] = model
}

func (a *Accounts) markDirty(address types.Address) {
	a.lock.Lock()
	defer a.lock.Unlock()

	a.dirty[address] = struct{}{}
}

func (a *Accounts) getOrderedDirty() []types.Address {
	a.lock.Lock()
	keys := make([]types.Address, 0, len(a.dirty))
	for k := range a.dirty {
		keys = append(keys, k)
	}
	a.lock.Unlock()

	sort.SliceStable(keys, func(i, j int) bool {
		return bytes.Compare(keys[i].Bytes(), keys[j].Bytes()) == 1
	})

	return keys
}
