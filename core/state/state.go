package state

import (
	"fmt"
	"math/big"

	"github.com/StakeportTeam/stakeport-go-node/core/state/accounts"
	"github.com/StakeportTeam/stakeport-go-node/core/state/app"
	"github.com/StakeportTeam/stakeport-go-node/core/state/bus"
	"github.com/StakeportTeam/stakeport-go-node/core/state/checker"
	"github.com/StakeportTeam/stakeport-go-node/core/state/positions"
	"github.com/StakeportTeam/stakeport-go-node/core/types"
	"github.com/StakeportTeam/stakeport-go-node/helpers"
	"github.com/StakeportTeam/stakeport-go-node/tree"
	"github.com/pkg/errors"
	db "github.com/tendermint/tm-db"
)

// CheckState is a read-only view over the latest committed state. API
// queries go through it while an operation may be mutating State.
type CheckState struct {
	state *State
}

func NewCheckState(state *State) *CheckState {
	return &CheckState{state: state}
}

func (cs *CheckState) App() app.RApp {
	return cs.state.App
}

func (cs *CheckState) Accounts() accounts.RAccounts {
	return cs.state.Accounts
}

func (cs *CheckState) Positions() positions.RPositions {
	return cs.state.Positions
}

func (cs *CheckState) Export() types.AppState {
	appState := new(types.AppState)
	cs.state.App.Export(appState)
	cs.state.Positions.Export(appState)
	cs.state.Accounts.Export(appState)

	return *appState
}

type State struct {
	App       *app.App
	Accounts  *accounts.Accounts
	Positions *positions.Positions
	Checker   *checker.Checker

	db             db.DB
	events         eventsdb
	tree           tree.MTree
	keepLastStates int64

	bus *bus.Bus
}

type eventsdb interface {
	CommitEvents() error
}

func NewState(height uint64, db db.DB, events eventsdb, cacheSize int, keepLastStates int64, initialVersion uint64) (*State, error) {
	iavlTree, err := tree.NewMutableTree(height, db, cacheSize, initialVersion)
	if err != nil {
		return nil, err
	}

	state, err := newStateForTree(iavlTree, events, db, keepLastStates)
	if err != nil {
		return nil, err
	}

	return state, nil
}

func NewCheckStateAtHeight(height uint64, db db.DB) (*CheckState, error) {
	iavlTree, err := tree.NewImmutableTree(height, db)
	if err != nil {
		return nil, err
	}

	state, err := newStateForTree(iavlTree, nil, nil, 0)
	if err != nil {
		return nil, err
	}

	return NewCheckState(state), nil
}

func newStateForTree(iavlTree tree.MTree, events eventsdb, db db.DB, keepLastStates int64) (*State, error) {
	stateBus := bus.NewBus()
	stateChecker := checker.NewChecker(stateBus)

	immutable := iavlTree.GetLastImmutable()

	state := &State{
		App:       app.NewApp(stateBus, immutable),
		Accounts:  accounts.NewAccounts(stateBus, immutable),
		Positions: positions.NewPositions(stateBus, immutable),
		Checker:   stateChecker,

		bus:            stateBus,
		db:             db,
		events:         events,
		tree:           iavlTree,
		keepLastStates: keepLastStates,
	}

	return state, nil
}

// Check verifies the custody invariant accumulated since the last commit.
func (s *State) Check() error {
	return s.Checker.Check()
}

// Commit persists a new state version and prunes versions beyond
// keepLastStates.
func (s *State) Commit() ([]byte, error) {
	hash, version, err := s.tree.Commit(s.App, s.Accounts, s.Positions)
	if err != nil {
		return hash, err
	}

	s.Checker.Reset()

	if s.events != nil {
		if err := s.events.CommitEvents(); err != nil {
			return hash, err
		}
	}

	versionToDelete := version - s.keepLastStates - 1
	if versionToDelete < 1 {
		return hash, nil
	}

	if err := s.tree.DeleteVersionIfExists(versionToDelete); err != nil {
		return hash, errors.Wrapf(err, "failed to delete version %d", versionToDelete)
	}

	return hash, nil
}

func (s *State) Height() uint64 {
	return uint64(s.tree.Version())
}

func (s *State) Hash() []byte {
	return s.tree.Hash()
}

func (s *State) HashString() string {
	return fmt.Sprintf("%X", s.tree.Hash())
}

// Import loads a genesis document. The document is expected to satisfy
// AppState.Verify.
func (s *State) Import(appState types.AppState) error {
	if err := appState.Verify(); err != nil {
		return err
	}

	s.App.SetGlobalNonce(appState.GlobalNonce)
	s.App.SetCooldownPeriod(appState.CooldownPeriod)

	for _, account := range appState.Accounts {
		s.Accounts.AddBalance(account.Address, helpers.StringToBigInt(account.Balance))
	}

	for _, position := range appState.Positions {
		value := helpers.StringToBigInt(position.Value)
		s.Positions.Create(position.Owner, position.Nonce, value, position.DepositTimestamp)
		switch position.Status {
		case types.PositionStatusWithdrawalInitiated:
			s.Positions.InitiateWithdraw(position.Owner, position.Nonce, position.UnlocksAt)
		case types.PositionStatusWithdrawalCompleted:
			s.Positions.Complete(position.Owner, position.Nonce)
		}
	}

	// Imported balances already include the custody pool, so the deltas
	// accumulated above would double-count on the first commit.
	s.Checker.Reset()

	return nil
}

// CustodyBalance is the pooled balance backing all live positions.
func (s *State) CustodyBalance() *big.Int {
	return s.Accounts.GetBalance(types.CustodyAddress)
}
