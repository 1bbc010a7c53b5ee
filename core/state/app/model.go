package app

import (
	"sync"
)

type Model struct {
	GlobalNonce    uint64
	CooldownPeriod uint64

	markDirty func()
	mx        sync.RWMutex
}

func (model *Model) getGlobalNonce() uint64 {
	model.mx.RLock()
	defer model.mx.RUnlock()

	return model.GlobalNonce
}

func (model *Model) setGlobalNonce(nonce uint64) {
	model.mx.Lock()
	defer model.mx.Unlock()

	if model.GlobalNonce != nonce {
		model.markDirty()
	}
	model.GlobalNonce = nonce
}

func (model *Model) getCooldownPeriod() uint64 {
	model.mx.RLock()
	defer model.mx.RUnlock()

	return model.CooldownPeriod
}

func (model *Model) setCooldownPeriod(period uint64) {
	model.mx.Lock()
	defer model.mx.Unlock()

	if model.CooldownPeriod != period {
		model.markDirty()
	}
	model.CooldownPeriod = period
}
