package positions

import (
	"math/big"
	"sync"

	"github.com/StakeportTeam/stakeport-go-node/core/types"
)

// Model is one custody position. Entries are never removed from the tree:
// a completed position stays behind as the audit trail of the withdrawal.
type Model struct {
	Value            *big.Int
	Nonce            uint64
	DepositTimestamp uint64
	Status           byte
	UnlocksAt        uint64

	owner     types.Address
	markDirty func(owner types.Address, nonce uint64)
	lock      sync.RWMutex
}

func (model *Model) Owner() types.Address {
	return model.owner
}

func (model *Model) GetValue() *big.Int {
	model.lock.RLock()
	defer model.lock.RUnlock()

	return big.NewInt(0).Set(model.Value)
}

func (model *Model) GetStatus() byte {
	model.lock.RLock()
	defer model.lock.RUnlock()

	return model.Status
}

func (model *Model) GetUnlocksAt() uint64 {
	model.lock.RLock()
	defer model.lock.RUnlock()

	return model.UnlocksAt
}

func (model *Model) GetDepositTimestamp() uint64 {
	model.lock.RLock()
	defer model.lock.RUnlock()

	return model.DepositTimestamp
}

func (model *Model) setStatus(status byte, unlocksAt uint64) {
	model.lock.Lock()
	defer model.lock.Unlock()

	model.Status = status
	model.UnlocksAt = unlocksAt
	model.markDirty(model.owner, model.Nonce)
}

func (model *Model) setDepositTimestamp(timestamp uint64) {
	model.lock.Lock()
	defer model.lock.Unlock()

	model.DepositTimestamp = timestamp
	model.markDirty(model.owner, model.Nonce)
}
