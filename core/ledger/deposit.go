package ledger

import (
	"math/big"

	"github.com/StakeportTeam/stakeport-go-node/core/code"
	"github.com/StakeportTeam/stakeport-go-node/core/events"
	"github.com/StakeportTeam/stakeport-go-node/core/types"
)

// DepositResult carries the nonce assigned to the new position.
type DepositResult struct {
	Nonce uint64 `json:"nonce"`
}

// Deposit moves amount from the sender into custody and opens an Active
// position under a fresh globally unique nonce.
func (l *Ledger) Deposit(sender types.Address, amount *big.Int) Response {
	l.lock.Lock()
	defer l.lock.Unlock()

	if amount == nil || amount.Sign() != 1 {
		amountStr := "nil"
		if amount != nil {
			amountStr = amount.String()
		}
		return Response{
			Code: code.InvalidAmount,
			Log:  "deposit amount must be positive",
			Info: EncodeError(code.NewInvalidAmount(amountStr)),
		}
	}

	// Funds move before any ledger mutation: a failed transfer leaves
	// no trace.
	if err := l.bank.MoveIn(sender, amount); err != nil {
		return Response{
			Code: code.TransferFailed,
			Log:  err.Error(),
			Info: EncodeError(code.NewTransferFailed(err.Error())),
		}
	}

	now := l.now()
	nonce := l.state.App.GetGlobalNonce()
	l.state.App.SetGlobalNonce(nonce + 1)
	l.state.Positions.Create(sender, nonce, amount, now)

	l.events.AddEvent(l.nextVersion(), &events.DepositEvent{
		Address:   sender,
		Amount:    amount.String(),
		Nonce:     nonce,
		Timestamp: now,
	})

	if err := l.commit(); err != nil {
		panic(err)
	}

	return Response{
		Code: code.OK,
		Data: DepositResult{Nonce: nonce},
	}
}
