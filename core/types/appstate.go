package types

import (
	"fmt"
	"math/big"

	"github.com/StakeportTeam/stakeport-go-node/helpers"
)

type AppState struct {
	Note           string     `json:"note"`
	CooldownPeriod uint64     `json:"cooldown_period"`
	GlobalNonce    uint64     `json:"global_nonce"`
	Positions      []Position `json:"positions,omitempty"`
	Accounts       []Account  `json:"accounts,omitempty"`
}

type Position struct {
	Owner            Address `json:"owner"`
	Nonce            uint64  `json:"nonce"`
	Value            string  `json:"value"`
	DepositTimestamp uint64  `json:"deposit_timestamp"`
	Status           byte    `json:"status"`
	UnlocksAt        uint64  `json:"unlocks_at"`
}

type Account struct {
	Address Address `json:"address"`
	Balance string  `json:"balance"`
}

func (s *AppState) Verify() error {
	if s.CooldownPeriod == 0 {
		return fmt.Errorf("cooldown period should be greater than 0")
	}

	custody := big.NewInt(0)

	positions := map[string]struct{}{}
	for _, p := range s.Positions {
		key := fmt.Sprintf("%s:%d", p.Owner.String(), p.Nonce)
		if _, exists := positions[key]; exists {
			return fmt.Errorf("duplicated position %s", key)
		}
		positions[key] = struct{}{}

		if p.Nonce >= s.GlobalNonce {
			return fmt.Errorf("nonce of position %s was never allocated", key)
		}

		if !helpers.IsValidBigInt(p.Value) {
			return fmt.Errorf("value of position %s is not valid BigInt", key)
		}

		value := helpers.StringToBigInt(p.Value)
		if value.Sign() != 1 {
			return fmt.Errorf("value of position %s should be positive", key)
		}

		switch p.Status {
		case PositionStatusActive, PositionStatusWithdrawalCompleted:
			if p.UnlocksAt != 0 {
				return fmt.Errorf("unlocks_at of position %s should be 0", key)
			}
		case PositionStatusWithdrawalInitiated:
			if p.UnlocksAt == 0 {
				return fmt.Errorf("unlocks_at of position %s should not be 0", key)
			}
		default:
			return fmt.Errorf("unknown status of position %s", key)
		}

		if p.Status != PositionStatusWithdrawalCompleted {
			custody.Add(custody, value)
		}
	}

	custodyBalance := big.NewInt(0)
	accounts := map[Address]struct{}{}
	for _, acc := range s.Accounts {
		if _, exists := accounts[acc.Address]; exists {
			return fmt.Errorf("duplicated account %s", acc.Address.String())
		}
		accounts[acc.Address] = struct{}{}

		if !helpers.IsValidBigInt(acc.Balance) {
			return fmt.Errorf("not valid balance for account %s", acc.Address.String())
		}

		if acc.Address == CustodyAddress {
			custodyBalance = helpers.StringToBigInt(acc.Balance)
		}
	}

	// An absent custody account counts as zero balance.
	if custodyBalance.Cmp(custody) != 0 {
		return fmt.Errorf("custody balance %s does not match sum of live positions %s", custodyBalance.String(), custody.String())
	}

	return nil
}
