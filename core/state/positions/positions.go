package positions

import (
	"bytes"
	"encoding/binary"
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

const mainPrefix = byte('p')

type Key struct {
	Owner types.Address
	Nonce uint64
}

type RPositions interface {
	Get(owner types.Address, nonce uint64) *Model
	GetByOwner(owner types.Address) []*Model
	Export(state *types.AppState)
}

// Positions is the position book keyed by (owner, nonce). A position is
// created by a deposit and walks Active -> WithdrawalInitiated ->
// {WithdrawalCompleted | Active}. Live amounts are reported to the
// invariant checker so they can be matched against the custody balance.
type Positions struct {
	list  map[Key]*Model
	dirty map[Key]struct{}

	db atomic.Value

	bus *bus.Bus

	lock sync.RWMutex
}

func NewPositions(stateBus *bus.Bus, db *iavl.ImmutableTree) *Positions {
	immutableTree := atomic.Value{}
	if db != nil {
		immutableTree.Store(db)
	}

	return &Positions{
		bus:   stateBus,
		db:    immutableTree,
		list:  map[Key]*Model{},
		dirty: map[Key]struct{}{},
	}
}

func (p *Positions) immutableTree() *iavl.ImmutableTree {
	db := p.db.Load()
	if db == nil {
		return nil
	}
	return db.(*iavl.ImmutableTree)
}

func (p *Positions) SetImmutableTree(immutableTree *iavl.ImmutableTree) {
	p.db.Store(immutableTree)
}

func (p *Positions) Commit(db *iavl.MutableTree, version int64) error {
	dirty := p.getOrderedDirty()
	for _, key := range dirty {
		position := p.getFromMap(key)

		p.lock.Lock()
		delete(p.dirty, key)
		p.lock.Unlock()

		position.lock.RLock()
		data, err := rlp.EncodeToBytes(position)
		position.lock.RUnlock()
		if err != nil {
			return fmt.Errorf("can't encode position %s/%d: %v", key.Owner.String(), key.Nonce, err)
		}

		db.Set(pathFromKey(key), data)
	}

	return nil
}

// Get returns the position of owner with the given nonce, or nil if no
// deposit ever produced it.
func (p *Positions) Get(owner types.Address, nonce uint64) *Model {
	key := Key{Owner: owner, Nonce: nonce}
	if position := p.getFromMap(key); position != nil {
		return position
	}

	_, enc := p.immutableTree().Get(pathFromKey(key))
	if len(enc) == 0 {
		return nil
	}

	position := new(Model)
	if err := rlp.DecodeBytes(enc, position); err != nil {
		panic(fmt.Sprintf("failed to decode position %s/%d: %s", owner.String(), nonce, err))
	}

	position.owner = owner
	position.markDirty = p.markDirty
	p.setToMap(key, position)

	return position
}

// GetByOwner returns every position of owner ever created, completed ones
// included, ordered by nonce.
func (p *Positions) GetByOwner(owner types.Address) []*Model {
	prefix := append([]byte{mainPrefix}, owner.Bytes()...)

	end := make([]byte, len(prefix))
	copy(end, prefix)
	for i := len(end) - 1; i >= 0; i-- {
		end[i]++
		if end[i] != 0 {
			break
		}
	}

	nonces := map[uint64]struct{}{}
	p.immutableTree().IterateRange(prefix, end, true, func(key []byte, value []byte) bool {
		nonces[binary.BigEndian.Uint64(key[1+types.AddressLength:])] = struct{}{}
		return false
	})

	p.lock.RLock()
	for key := range p.list {
		if key.Owner == owner {
			nonces[key.Nonce] = struct{}{}
		}
	}
	p.lock.RUnlock()

	ordered := make([]uint64, 0, len(nonces))
	for nonce := range nonces {
		ordered = append(ordered, nonce)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i] < ordered[j] })

	positions := make([]*Model, 0, len(ordered))
	for _, nonce := range ordered {
		positions = append(positions, p.Get(owner, nonce))
	}

	return positions
}

// Create opens an Active position. The amount joins the live set, so the
// delta is reported to the checker.
func (p *Positions) Create(owner types.Address, nonce uint64, value *big.Int, timestamp uint64) {
	position := &Model{
		Value:            big.NewInt(0).Set(value),
		Nonce:            nonce,
		DepositTimestamp: timestamp,
		Status:           types.PositionStatusActive,
		UnlocksAt:        0,
		owner:            owner,
		markDirty:        p.markDirty,
	}

	key := Key{Owner: owner, Nonce: nonce}
	p.setToMap(key, position)
	p.markDirty(owner, nonce)

	p.bus.Checker().AddStake(value)
}

// InitiateWithdraw stamps the unlock time and moves the position to
// WithdrawalInitiated. The amount stays in the live set.
func (p *Positions) InitiateWithdraw(owner types.Address, nonce uint64, unlocksAt uint64) {
	position := p.Get(owner, nonce)
	position.setStatus(types.PositionStatusWithdrawalInitiated, unlocksAt)
}

// Complete marks the position WithdrawalCompleted and clears the unlock
// time. The amount leaves the live set.
func (p *Positions) Complete(owner types.Address, nonce uint64) {
	position := p.Get(owner, nonce)
	position.setStatus(types.PositionStatusWithdrawalCompleted, 0)

	p.bus.Checker().AddStake(big.NewInt(0).Neg(position.GetValue()))
}

// Reopen reverts a Complete that could not be settled: the position goes
// back to WithdrawalInitiated with its previous unlock time and its amount
// rejoins the live set. The position must have been committed before the
// Complete being reverted.
func (p *Positions) Reopen(owner types.Address, nonce uint64, unlocksAt uint64) {
	position := p.Get(owner, nonce)
	position.setStatus(types.PositionStatusWithdrawalInitiated, unlocksAt)

	p.bus.Checker().AddStake(position.GetValue())

	// The restored model matches the committed bytes, the next commit can
	// skip the entry.
	p.lock.Lock()
	delete(p.dirty, Key{Owner: owner, Nonce: nonce})
	p.lock.Unlock()
}

// Restake cancels an initiated withdrawal: the position becomes Active
// again with a fresh deposit timestamp, amount and nonce untouched.
func (p *Positions) Restake(owner types.Address, nonce uint64, timestamp uint64) {
	position := p.Get(owner, nonce)
	position.setStatus(types.PositionStatusActive, 0)
	position.setDepositTimestamp(timestamp)
}

func (p *Positions) Export(state *types.AppState) {
	p.immutableTree().IterateRange([]byte{mainPrefix}, []byte{mainPrefix + 1}, true, func(key []byte, value []byte) bool {
		owner := types.BytesToAddress(key[1 : 1+types.AddressLength])
		nonce := binary.BigEndian.Uint64(key[1+types.AddressLength:])

		position := p.Get(owner, nonce)
		state.Positions = append(state.Positions, types.Position{
			Owner:            owner,
			Nonce:            nonce,
			Value:            position.GetValue().String(),
			DepositTimestamp: position.GetDepositTimestamp(),
			Status:           position.GetStatus(),
			UnlocksAt:        position.GetUnlocksAt(),
		})

		return false
	})

	sort.SliceStable(state.Positions, func(i, j int) bool {
		return state.Positions[i].Nonce < state.Positions[j].Nonce
	})
}

func pathFromKey(key Key) []byte {
	path := append([]byte{mainPrefix}, key.Owner.Bytes()...)
	nonce := make([]byte, 8)
	binary.BigEndian.PutUint64(nonce, key.Nonce)
	return append(path, nonce...)
}

func (p *Positions) getFromMap(key Key) *Model {
	p.lock.RLock()
	defer p.lock.RUnlock()

	return p.list[key]
}

func (p *Positions) setToMap(key Key, model *Model) {
	p.lock.Lock()
	defer p.lock.Unlock()

	p.list[key] = model
}

func (p *Positions) markDirty(owner types.Address, nonce uint64) {
	p.lock.Lock()
	defer p.lock.Unlock()

	p.dirty[Key{Owner: owner, Nonce: nonce}] = struct{}{}
}

func (p *Positions) getOrderedDirty() []Key {
	p.lock.Lock()
	keys := make([]Key, 0, len(p.dirty))
	for k := range p.dirty {
		keys = append(keys, k)
	}
	p.lock.Unlock()

	sort.SliceStable(keys, func(i, j int) bool {
		cmp := bytes.Compare(keys[i].Owner.Bytes(), keys[j].Owner.Bytes())
		if cmp != 0 {
			return cmp == 1
		}
		return keys[i].Nonce > keys[j].Nonce
	})

	return keys
}
