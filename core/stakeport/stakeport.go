package stakeport

import (
	"encoding/json"
	"os"

	"github.com/StakeportTeam/stakeport-go-node/config"
	"github.com/StakeportTeam/stakeport-go-node/core/access"
	eventsdb "github.com/StakeportTeam/stakeport-go-node/core/events"
	"github.com/StakeportTeam/stakeport-go-node/core/ledger"
	"github.com/StakeportTeam/stakeport-go-node/core/state"
	"github.com/StakeportTeam/stakeport-go-node/core/transfer"
	"github.com/StakeportTeam/stakeport-go-node/core/types"
	"github.com/pkg/errors"
	db "github.com/tendermint/tm-db"
)

// Node assembles the ledger over its persistent stores.
type Node struct {
	cfg *config.Config

	stateDB  db.DB
	eventsDB db.DB

	state  *state.State
	events eventsdb.IEventsDB
	ledger *ledger.Ledger
}

func NewNode(cfg *config.Config) (*Node, error) {
	stateDB, err := db.NewDB("state", db.BackendType(cfg.DBBackend), cfg.DBDir())
	if err != nil {
		return nil, errors.Wrap(err, "can't open state db")
	}

	eventsDB, err := db.NewDB("events", db.BackendType(cfg.DBBackend), cfg.DBDir())
	if err != nil {
		return nil, errors.Wrap(err, "can't open events db")
	}

	events := eventsdb.NewEventsStore(eventsDB)

	ledgerState, err := state.NewState(0, stateDB, events, cfg.StateCacheSize, cfg.KeepLastStates, 0)
	if err != nil {
		return nil, errors.Wrap(err, "can't create state")
	}

	node := &Node{
		cfg:      cfg,
		stateDB:  stateDB,
		eventsDB: eventsDB,
		state:    ledgerState,
		events:   events,
	}

	if ledgerState.Height() == 0 {
		if err := node.initGenesis(); err != nil {
			return nil, errors.Wrap(err, "can't init genesis")
		}
	}

	admin := types.Address{}
	if cfg.AdminAddress != "" {
		if !types.IsHexAddress(cfg.AdminAddress) {
			return nil, errors.Errorf("invalid admin_address %q", cfg.AdminAddress)
		}
		admin = types.HexToAddress(cfg.AdminAddress)
	}

	bank := transfer.NewBank(ledgerState.Accounts)
	node.ledger = ledger.NewLedger(ledgerState, bank, access.NewConfigKeeper(admin), events)

	return node, nil
}

// initGenesis seeds a fresh ledger: from the genesis file when present,
// from config defaults otherwise.
func (n *Node) initGenesis() error {
	appState := types.AppState{
		CooldownPeriod: n.cfg.InitialCooldownPeriod,
	}

	data, err := os.ReadFile(n.cfg.GenesisFile())
	if err == nil {
		if err := json.Unmarshal(data, &appState); err != nil {
			return errors.Wrap(err, "can't parse genesis file")
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := n.state.Import(appState); err != nil {
		return err
	}

	if _, err := n.state.Commit(); err != nil {
		return err
	}

	return nil
}

func (n *Node) Ledger() *ledger.Ledger {
	return n.ledger
}

func (n *Node) CheckState() *state.CheckState {
	return state.NewCheckState(n.state)
}

func (n *Node) State() *state.State {
	return n.state
}

func (n *Node) Events() eventsdb.IEventsDB {
	return n.events
}

func (n *Node) Stop() {
	_ = n.stateDB.Close()
	_ = n.eventsDB.Close()
}
