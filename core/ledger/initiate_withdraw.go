package ledger

import (
	"github.com/StakeportTeam/stakeport-go-node/core/code"
	"github.com/StakeportTeam/stakeport-go-node/core/events"
	"github.com/StakeportTeam/stakeport-go-node/core/types"
)

// InitiateWithdrawResult carries the unlock time stamped on the position.
type InitiateWithdrawResult struct {
	UnlocksAt uint64 `json:"unlocks_at"`
}

// InitiateWithdraw starts the cooldown on an Active position of the
// sender. The amount stays in custody until Withdraw.
func (l *Ledger) InitiateWithdraw(sender types.Address, nonce uint64) Response {
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

	if position.GetStatus() != types.PositionStatusActive {
		return Response{
			Code: code.InvalidState,
			Log:  "withdrawal can only be initiated for an active position",
			Info: EncodeError(code.NewInvalidState(sender.String(), nonce, types.PositionStatusName(position.GetStatus()))),
		}
	}

	now := l.now()
	unlocksAt := now + l.state.App.GetCooldownPeriod()
	l.state.Positions.InitiateWithdraw(sender, nonce, unlocksAt)

	l.events.AddEvent(l.nextVersion(), &events.InitiateWithdrawEvent{
		Address:   sender,
		Nonce:     nonce,
		UnlocksAt: unlocksAt,
		Timestamp: now,
	})

	if err := l.commit(); err != nil {
		panic(err)
	}

	return Response{
		Code: code.OK,
		Data: InitiateWithdrawResult{UnlocksAt: unlocksAt},
	}
}
