package positions

import (
	"math/big"
	"testing"

	"github.com/StakeportTeam/stakeport-go-node/core/state/bus"
	"github.com/StakeportTeam/stakeport-go-node/core/state/checker"
	"github.com/StakeportTeam/stakeport-go-node/core/types"
	"github.com/StakeportTeam/stakeport-go-node/tree"
	db "github.com/tendermint/tm-db"
)

func TestPositionsLifecycle(t *testing.T) {
	t.Parallel()
	memDB := db.NewMemDB()
	mutableTree, _ := tree.NewMutableTree(0, memDB, 1024, 0)

	b := bus.NewBus()
	checker.NewChecker(b)

	store := NewPositions(b, mutableTree.GetLastImmutable())

	owner := types.HexToAddress("Sx00aa11bb22cc33dd44ee55ff6600aa11bb22cc33")
	value := big.NewInt(1000)

	store.Create(owner, 1, value, 100)

	position := store.Get(owner, 1)
	if position == nil {
		t.Fatal("position not found after create")
	}
	if position.GetStatus() != types.PositionStatusActive {
		t.Fatalf("status is not active: %d", position.GetStatus())
	}
	if position.GetValue().Cmp(value) != 0 {
		t.Fatalf("wrong value: %s", position.GetValue())
	}
	if position.GetUnlocksAt() != 0 {
		t.Fatal("unlocks_at must be zero for active position")
	}

	store.InitiateWithdraw(owner, 1, 500)
	position = store.Get(owner, 1)
	if position.GetStatus() != types.PositionStatusWithdrawalInitiated {
		t.Fatalf("status is not initiated: %d", position.GetStatus())
	}
	if position.GetUnlocksAt() != 500 {
		t.Fatalf("wrong unlocks_at: %d", position.GetUnlocksAt())
	}

	store.Complete(owner, 1)
	position = store.Get(owner, 1)
	if position.GetStatus() != types.PositionStatusWithdrawalCompleted {
		t.Fatalf("status is not completed: %d", position.GetStatus())
	}
	if position.GetUnlocksAt() != 0 {
		t.Fatal("unlocks_at must be cleared on complete")
	}

	_, _, err := mutableTree.Commit(store)
	if err != nil {
		t.Fatalf("commit failed: %s", err)
	}
}

func TestPositionsReopen(t *testing.T) {
	t.Parallel()
	memDB := db.NewMemDB()
	mutableTree, _ := tree.NewMutableTree(0, memDB, 1024, 0)

	b := bus.NewBus()
	check := checker.NewChecker(b)

	store := NewPositions(b, mutableTree.GetLastImmutable())

	owner := types.HexToAddress("Sx00aa11bb22cc33dd44ee55ff6600aa11bb22cc33")
	store.Create(owner, 7, big.NewInt(42), 100)
	store.InitiateWithdraw(owner, 7, 900)

	if _, _, err := mutableTree.Commit(store); err != nil {
		t.Fatalf("commit failed: %s", err)
	}

	store.Complete(owner, 7)
	store.Reopen(owner, 7, 900)

	position := store.Get(owner, 7)
	if position.GetStatus() != types.PositionStatusWithdrawalInitiated {
		t.Fatalf("status is not initiated after reopen: %d", position.GetStatus())
	}
	if position.GetUnlocksAt() != 900 {
		t.Fatalf("unlocks_at not restored: %d", position.GetUnlocksAt())
	}

	store.lock.RLock()
	dirtyCount := len(store.dirty)
	store.lock.RUnlock()
	if dirtyCount != 0 {
		t.Fatalf("reverted position must not stay dirty, got %d entries", dirtyCount)
	}

	check.AddCustody(big.NewInt(42))
	if err := check.Check(); err != nil {
		t.Fatalf("stake delta after reopen must equal create delta: %s", err)
	}
}

func TestPositionsRestake(t *testing.T) {
	t.Parallel()
	memDB := db.NewMemDB()
	mutableTree, _ := tree.NewMutableTree(0, memDB, 1024, 0)

	b := bus.NewBus()
	checker.NewChecker(b)

	store := NewPositions(b, mutableTree.GetLastImmutable())

	owner := types.HexToAddress("Sx00aa11bb22cc33dd44ee55ff6600aa11bb22cc33")
	store.Create(owner, 3, big.NewInt(500), 100)
	store.InitiateWithdraw(owner, 3, 800)
	store.Restake(owner, 3, 750)

	position := store.Get(owner, 3)
	if position.GetStatus() != types.PositionStatusActive {
		t.Fatalf("status is not active after restake: %d", position.GetStatus())
	}
	if position.GetUnlocksAt() != 0 {
		t.Fatal("unlocks_at must be cleared on restake")
	}
	if position.GetDepositTimestamp() != 750 {
		t.Fatalf("deposit timestamp not refreshed: %d", position.GetDepositTimestamp())
	}
	if position.GetValue().Cmp(big.NewInt(500)) != 0 {
		t.Fatalf("value must be preserved: %s", position.GetValue())
	}
	if position.Nonce != 3 {
		t.Fatalf("nonce must be preserved: %d", position.Nonce)
	}
}

func TestPositionsPersistence(t *testing.T) {
	t.Parallel()
	memDB := db.NewMemDB()
	mutableTree, _ := tree.NewMutableTree(0, memDB, 1024, 0)

	b := bus.NewBus()
	checker.NewChecker(b)

	store := NewPositions(b, mutableTree.GetLastImmutable())

	owner := types.HexToAddress("Sx00aa11bb22cc33dd44ee55ff6600aa11bb22cc33")
	store.Create(owner, 1, big.NewInt(100), 10)
	store.Create(owner, 2, big.NewInt(200), 20)
	store.InitiateWithdraw(owner, 2, 600)

	_, _, err := mutableTree.Commit(store)
	if err != nil {
		t.Fatalf("commit failed: %s", err)
	}

	reloaded := NewPositions(b, mutableTree.GetLastImmutable())

	position := reloaded.Get(owner, 2)
	if position == nil {
		t.Fatal("position lost after commit")
	}
	if position.GetStatus() != types.PositionStatusWithdrawalInitiated {
		t.Fatalf("status lost after commit: %d", position.GetStatus())
	}
	if position.GetValue().Cmp(big.NewInt(200)) != 0 {
		t.Fatalf("value lost after commit: %s", position.GetValue())
	}

	list := reloaded.GetByOwner(owner)
	if len(list) != 2 {
		t.Fatalf("expected 2 positions, got %d", len(list))
	}
	if list[0].Nonce != 1 || list[1].Nonce != 2 {
		t.Fatal("positions must be ordered by nonce")
	}
}

func TestPositionsGetMissing(t *testing.T) {
	t.Parallel()
	memDB := db.NewMemDB()
	mutableTree, _ := tree.NewMutableTree(0, memDB, 1024, 0)

	b := bus.NewBus()
	checker.NewChecker(b)

	store := NewPositions(b, mutableTree.GetLastImmutable())

	owner := types.HexToAddress("Sx00aa11bb22cc33dd44ee55ff6600aa11bb22cc33")
	if store.Get(owner, 99) != nil {
		t.Fatal("expected nil for never-created position")
	}
}
