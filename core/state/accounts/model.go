package accounts

import (
	"math/big"
	"sync"

	"github.com/StakeportTeam/stakeport-go-node/core/types"
)

type Model struct {
	Balance *big.Int

	address   types.Address
	markDirty func(address types.Address)
	lock      sync.RWMutex
}

func (model *Model) getBalance() *big.Int {
	model.lock.RLock()
	defer model.lock.RUnlock()

	if model.Balance == nil {
		return big.NewInt(0)
	}

	return big.NewInt(0).Set(model.Balance)
}

func (model *Model) setBalance(value *big.Int) {
	model.lock.Lock()
	defer model.lock.Unlock()

	model.Balance = big.NewInt(0).Set(value)
	model.markDirty(model.address)
}
