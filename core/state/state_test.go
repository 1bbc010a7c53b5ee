package state

import (
	"math/big"
	"testing"

	"github.com/StakeportTeam/stakeport-go-node/core/events"
	"github.com/StakeportTeam/stakeport-go-node/core/types"
	db "github.com/tendermint/tm-db"
)

func TestStateCommitAndReload(t *testing.T) {
	t.Parallel()
	memDB := db.NewMemDB()

	st, err := NewState(0, memDB, nil, 1024, 120, 0)
	if err != nil {
		t.Fatalf("can't create state: %s", err)
	}

	owner := types.HexToAddress("Sx04bea23efb744dc93b4fda4c20bf4a21c6e195f1")

	st.App.SetCooldownPeriod(3600)
	st.App.SetGlobalNonce(2)
	st.Accounts.AddBalance(types.CustodyAddress, big.NewInt(100))
	st.Positions.Create(owner, 1, big.NewInt(100), 50)

	if err := st.Check(); err != nil {
		t.Fatalf("invariant check failed: %s", err)
	}

	hash, err := st.Commit()
	if err != nil {
		t.Fatalf("commit failed: %s", err)
	}
	if len(hash) == 0 {
		t.Fatal("empty hash")
	}
	if st.Height() != 1 {
		t.Fatalf("wrong height: %d", st.Height())
	}

	reloaded, err := NewState(1, memDB, nil, 1024, 120, 0)
	if err != nil {
		t.Fatalf("can't reload state: %s", err)
	}

	if reloaded.App.GetCooldownPeriod() != 3600 {
		t.Fatalf("cooldown lost: %d", reloaded.App.GetCooldownPeriod())
	}
	if reloaded.App.GetGlobalNonce() != 2 {
		t.Fatalf("nonce lost: %d", reloaded.App.GetGlobalNonce())
	}
	if reloaded.Positions.Get(owner, 1) == nil {
		t.Fatal("position lost")
	}
	if reloaded.CustodyBalance().Cmp(big.NewInt(100)) != 0 {
		t.Fatalf("custody lost: %s", reloaded.CustodyBalance())
	}
}

func TestStateImportExport(t *testing.T) {
	t.Parallel()

	owner := types.HexToAddress("Sx04bea23efb744dc93b4fda4c20bf4a21c6e195f1")

	appState := types.AppState{
		CooldownPeriod: 3600,
		GlobalNonce:    2,
		Positions: []types.Position{
			{Owner: owner, Nonce: 0, Value: "100", DepositTimestamp: 10, Status: types.PositionStatusActive},
			{Owner: owner, Nonce: 1, Value: "200", DepositTimestamp: 20, Status: types.PositionStatusWithdrawalInitiated, UnlocksAt: 3620},
		},
		Accounts: []types.Account{
			{Address: types.CustodyAddress, Balance: "300"},
			{Address: owner, Balance: "50"},
		},
	}
	if err := appState.Verify(); err != nil {
		t.Fatalf("genesis must verify: %s", err)
	}

	st, err := NewState(0, db.NewMemDB(), events.NewEventsStore(db.NewMemDB()), 1024, 120, 0)
	if err != nil {
		t.Fatalf("can't create state: %s", err)
	}

	if err := st.Import(appState); err != nil {
		t.Fatalf("import failed: %s", err)
	}
	if err := st.Check(); err != nil {
		t.Fatalf("invariant check failed after import: %s", err)
	}
	if _, err := st.Commit(); err != nil {
		t.Fatalf("commit failed: %s", err)
	}

	exported := NewCheckState(st).Export()

	if exported.CooldownPeriod != 3600 || exported.GlobalNonce != 2 {
		t.Fatal("scalars lost in round trip")
	}
	if len(exported.Positions) != 2 {
		t.Fatalf("expected 2 positions, got %d", len(exported.Positions))
	}
	if exported.Positions[1].UnlocksAt != 3620 {
		t.Fatal("unlocks_at lost in round trip")
	}
	if len(exported.Accounts) != 2 {
		t.Fatalf("expected 2 accounts, got %d", len(exported.Accounts))
	}
	if err := exported.Verify(); err != nil {
		t.Fatalf("exported state must verify: %s", err)
	}
}
