package checker

import (
	"fmt"
	"math/big"
	"sync"

	"github.com/StakeportTeam/stakeport-go-node/core/state/bus"
)

// Checker accumulates the deltas of the pooled custody balance and of the
// sum of live position amounts. Both must match at every commit.
type Checker struct {
	custodyDelta *big.Int
	stakeDelta   *big.Int

	lock sync.RWMutex
}

func NewChecker(bus *bus.Bus) *Checker {
	checker := &Checker{
		custodyDelta: big.NewInt(0),
		stakeDelta:   big.NewInt(0),
	}
	bus.SetChecker(checker)

	return checker
}

func (c *Checker) AddCustody(value *big.Int) {
	c.lock.Lock()
	defer c.lock.Unlock()

	c.custodyDelta.Add(c.custodyDelta, value)
}

func (c *Checker) AddStake(value *big.Int) {
	c.lock.Lock()
	defer c.lock.Unlock()

	c.stakeDelta.Add(c.stakeDelta, value)
}

// Reset resets checker deltas
func (c *Checker) Reset() {
	c.lock.Lock()
	defer c.lock.Unlock()

	c.custodyDelta = big.NewInt(0)
	c.stakeDelta = big.NewInt(0)
}

func (c *Checker) Check() error {
	c.lock.RLock()
	defer c.lock.RUnlock()

	if c.custodyDelta.Cmp(c.stakeDelta) != 0 {
		return fmt.Errorf("invariants error: custody delta %s, live positions delta %s", c.custodyDelta.String(), c.stakeDelta.String())
	}

	return nil
}
