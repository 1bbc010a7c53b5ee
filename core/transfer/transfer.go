package transfer

import (
	"fmt"
	"math/big"

	"github.com/StakeportTeam/stakeport-go-node/core/state/accounts"
	"github.com/StakeportTeam/stakeport-go-node/core/types"
)

// Mover moves the staked asset between a depositor and the custody pool.
// Implementations must be atomic per call: on error no balance changes.
type Mover interface {
	MoveIn(from types.Address, amount *big.Int) error
	MoveOut(to types.Address, amount *big.Int) error
}

// Bank is the production Mover backed by the accounts store.
type Bank struct {
	accounts *accounts.Accounts
}

func NewBank(accounts *accounts.Accounts) *Bank {
	return &Bank{accounts: accounts}
}

func (b *Bank) MoveIn(from types.Address, amount *big.Int) error {
	balance := b.accounts.GetBalance(from)
	if balance.Cmp(amount) < 0 {
		return fmt.Errorf("insufficient funds: %s has %s, wants %s", from.String(), balance.String(), amount.String())
	}

	b.accounts.SubBalance(from, amount)
	b.accounts.AddBalance(types.CustodyAddress, amount)

	return nil
}

func (b *Bank) MoveOut(to types.Address, amount *big.Int) error {
	balance := b.accounts.GetBalance(types.CustodyAddress)
	if balance.Cmp(amount) < 0 {
		return fmt.Errorf("custody pool underfunded: has %s, wants %s", balance.String(), amount.String())
	}

	b.accounts.SubBalance(types.CustodyAddress, amount)
	b.accounts.AddBalance(to, amount)

	return nil
}
