package app

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/StakeportTeam/stakeport-go-node/core/state/bus"
	"github.com/StakeportTeam/stakeport-go-node/core/types"
	"github.com/cosmos/iavl"
	"github.com/ethereum/go-ethereum/rlp"
)

const mainPrefix = 'd'

type RApp interface {
	Export(state *types.AppState)
	GetGlobalNonce() uint64
	GetCooldownPeriod() uint64
}

// App keeps the process-wide scalars: the global position nonce and the
// cooldown period applied to future withdrawal initiations.
type App struct {
	model   *Model
	isDirty bool

	db atomic.Value

	bus *bus.Bus
	mx  sync.Mutex
}

func NewApp(stateBus *bus.Bus, db *iavl.ImmutableTree) *App {
	immutableTree := atomic.Value{}
	if db != nil {
		immutableTree.Store(db)
	}

	return &App{bus: stateBus, db: immutableTree}
}

func (a *App) immutableTree() *iavl.ImmutableTree {
	db := a.db.Load()
	if db == nil {
		return nil
	}
	return db.(*iavl.ImmutableTree)
}

func (a *App) SetImmutableTree(immutableTree *iavl.ImmutableTree) {
	a.db.Store(immutableTree)
}

func (a *App) Commit(db *iavl.MutableTree, version int64) error {
	a.mx.Lock()
	defer a.mx.Unlock()

	if !a.isDirty {
		return nil
	}

	a.isDirty = false

	data, err := rlp.EncodeToBytes(a.model)
	if err != nil {
		return fmt.Errorf("can't encode app model: %s", err)
	}

	path := []byte{mainPrefix}
	db.Set(path, data)

	return nil
}

func (a *App) GetGlobalNonce() uint64 {
	return a.getOrNew().getGlobalNonce()
}

func (a *App) SetGlobalNonce(nonce uint64) {
	a.getOrNew().setGlobalNonce(nonce)
}

func (a *App) GetCooldownPeriod() uint64 {
	return a.getOrNew().getCooldownPeriod()
}

func (a *App) SetCooldownPeriod(period uint64) {
	a.getOrNew().setCooldownPeriod(period)
}

func (a *App) get() *Model {
	a.mx.Lock()
	defer a.mx.Unlock()

	if a.model != nil {
		return a.model
	}

	path := []byte{mainPrefix}
	_, enc := a.immutableTree().Get(path)
	if len(enc) == 0 {
		return nil
	}

	model := &Model{}
	if err := rlp.DecodeBytes(enc, model); err != nil {
		panic(fmt.Sprintf("failed to decode app model: %s", err))
	}

	a.model = model
	a.model.markDirty = a.markDirty
	return a.model
}

func (a *App) getOrNew() *Model {
	model := a.get()
	if model == nil {
		model = &Model{
			GlobalNonce:    0,
			CooldownPeriod: types.DefaultCooldownPeriod,
			markDirty:      a.markDirty,
		}
		a.mx.Lock()
		a.model = model
		a.mx.Unlock()
	}

	return model
}

func (a *App) markDirty() {
	a.mx.Lock()
	defer a.mx.Unlock()

	a.isDirty = true
}

func (a *App) Export(state *types.AppState) {
	state.GlobalNonce = a.GetGlobalNonce()
	state.CooldownPeriod = a.GetCooldownPeriod()
}
