package ledger

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/StakeportTeam/stakeport-go-node/core/access"
	"github.com/StakeportTeam/stakeport-go-node/core/events"
	"github.com/StakeportTeam/stakeport-go-node/core/state"
	"github.com/StakeportTeam/stakeport-go-node/core/transfer"
	"github.com/pkg/errors"
)

// Response is the outcome of a ledger operation.
type Response struct {
	Code uint32      `json:"code"`
	Data interface{} `json:"data,omitempty"`
	Log  string      `json:"log,omitempty"`
	Info string      `json:"info,omitempty"`
}

func EncodeError(data interface{}) string {
	marshal, err := json.Marshal(data)
	if err != nil {
		panic(err)
	}
	return string(marshal)
}

// Ledger drives the position state machine. Operations that move the
// asset run one at a time under the ledger lock, so the status flip that
// precedes an outward transfer cannot be observed half-done.
type Ledger struct {
	state  *state.State
	bank   transfer.Mover
	access access.Keeper
	events events.IEventsDB

	now func() uint64

	lock sync.Mutex
}

func NewLedger(state *state.State, bank transfer.Mover, accessKeeper access.Keeper, eventsDB events.IEventsDB) *Ledger {
	return &Ledger{
		state:  state,
		bank:   bank,
		access: accessKeeper,
		events: eventsDB,
		now:    func() uint64 { return uint64(time.Now().Unix()) },
	}
}

// SetClock overrides the time source. Used in tests.
func (l *Ledger) SetClock(now func() uint64) {
	l.now = now
}

func (l *Ledger) State() *state.State {
	return l.state
}

// commit checks the custody invariant and persists a state version
// together with the events emitted for it.
func (l *Ledger) commit() error {
	if err := l.state.Check(); err != nil {
		return errors.Wrap(err, "invariant check failed")
	}

	if _, err := l.state.Commit(); err != nil {
		return errors.Wrap(err, "commit failed")
	}

	return nil
}

// nextVersion is the state version the pending operation will commit as.
// Events are keyed by it.
func (l *Ledger) nextVersion() uint32 {
	return uint32(l.state.Height() + 1)
}
