package ledger

import (
	"github.com/StakeportTeam/stakeport-go-node/core/code"
	"github.com/StakeportTeam/stakeport-go-node/core/events"
	"github.com/StakeportTeam/stakeport-go-node/core/types"
)

// Withdraw pays out a position whose cooldown has elapsed. The unlock
// boundary is inclusive: a call at exactly unlocks_at succeeds.
//
// The position is marked completed before the asset leaves custody, so a
// reentrant call during the transfer finds it already spent. If the
// transfer itself fails the position is restored under the same lock.
func (l *Ledger) Withdraw(sender types.Address, nonce uint64) Response {
	l.lock.Lock()
	defer l.lock.Unlock()

	position := l.state.Positions.Get(sender, nonce)
	if position == nil {
		return Response{
			Code: code.PositionNotFound,
			Log:  "position does not exist",
			Info: EncodeError(code.NewPositionNotFound(sender.String(), nonce)),
		}
	}

	if position.GetStatus() != types.PositionStatusWithdrawalInitiated {
		return Response{
			Code: code.InvalidState,
			Log:  "withdrawal was not initiated for this position",
			Info: EncodeError(code.NewInvalidState(sender.String(), nonce, types.PositionStatusName(position.GetStatus()))),
		}
	}

	now := l.now()
	unlocksAt := position.GetUnlocksAt()
	if now < unlocksAt {
		return Response{
			Code: code.NotYetUnlocked,
			Log:  "cooldown period has not elapsed",
			Info: EncodeError(code.NewNotYetUnlocked(sender.String(), nonce, unlocksAt, now)),
		}
	}

	amount := position.GetValue()
	l.state.Positions.Complete(sender, nonce)

	if err := l.bank.MoveOut(sender, amount); err != nil {
		l.state.Positions.Reopen(sender, nonce, unlocksAt)
		return Response{
			Code: code.TransferFailed,
			Log:  err.Error(),
			Info: EncodeError(code.NewTransferFailed(err.Error())),
		}
	}

	l.events.AddEvent(l.nextVersion(), &events.WithdrawEvent{
		Address:   sender,
		Amount:    amount.String(),
		Nonce:     nonce,
		Timestamp: now,
	})

	if err := l.commit(); err != nil {
		panic(err)
	}

	return Response{Code: code.OK}
}
