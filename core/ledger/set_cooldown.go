package ledger

import (
	"github.com/StakeportTeam/stakeport-go-node/core/code"
	"github.com/StakeportTeam/stakeport-go-node/core/events"
	"github.com/StakeportTeam/stakeport-go-node/core/types"
)

// SetCooldownPeriod changes the cooldown applied to future withdrawal
// initiations. Positions already in cooldown keep their unlock time.
func (l *Ledger) SetCooldownPeriod(sender types.Address, period uint64) Response {
	l.lock.Lock()
	defer l.lock.Unlock()

	if !l.access.IsAdmin(sender) {
		return Response{
			Code: code.Unauthorized,
			Log:  "sender is not the admin principal",
			Info: EncodeError(code.NewUnauthorized(sender.String())),
		}
	}

	if period == 0 {
		return Response{
			Code: code.InvalidPeriod,
			Log:  "cooldown period must be positive",
			Info: EncodeError(code.NewInvalidPeriod()),
		}
	}

	now := l.now()
	l.state.App.SetCooldownPeriod(period)

	l.events.AddEvent(l.nextVersion(), &events.SetCooldownEvent{
		Address:   sender,
		Period:    period,
		Timestamp: now,
	})

	if err := l.commit(); err != nil {
		panic(err)
	}

	return Response{Code: code.OK}
}
