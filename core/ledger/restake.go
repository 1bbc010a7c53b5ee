package ledger

import (
	"github.com/StakeportTeam/stakeport-go-node/core/code"
	"github.com/StakeportTeam/stakeport-go-node/core/events"
	"github.com/StakeportTeam/stakeport-go-node/core/types"
)

// Restake cancels an initiated withdrawal. The position becomes Active
// again with a fresh deposit timestamp; amount and nonce are untouched
// and no asset moves.
func (l *Ledger) Restake(sender types.Address, nonce uint64) Response {
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
			Log:  "only an initiated withdrawal can be restaked",
			Info: EncodeError(code.NewInvalidState(sender.String(), nonce, types.PositionStatusName(position.GetStatus()))),
		}
	}

	now := l.now()
	l.state.Positions.Restake(sender, nonce, now)

	l.events.AddEvent(l.nextVersion(), &events.RestakeEvent{
		Address:   sender,
		Amount:    position.GetValue().String(),
		Nonce:     nonce,
		Timestamp: now,
	})

	if err := l.commit(); err != nil {
		panic(err)
	}

	return Response{Code: code.OK}
}
