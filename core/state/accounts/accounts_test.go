package accounts

import (
	"math/big"
	"testing"

	"github.com/StakeportTeam/stakeport-go-node/core/state/bus"
	"github.com/StakeportTeam/stakeport-go-node/core/state/checker"
	"github.com/StakeportTeam/stakeport-go-node/core/types"
	"github.com/StakeportTeam/stakeport-go-node/tree"
	db "github.com/tendermint/tm-db"
)

func TestAccountsBalance(t *testing.T) {
	t.Parallel()
	memDB := db.NewMemDB()
	mutableTree, _ := tree.NewMutableTree(0, memDB, 1024, 0)

	b := bus.NewBus()
	checker.NewChecker(b)

	store := NewAccounts(b, mutableTree.GetLastImmutable())

	address := types.HexToAddress("Sx00aa11bb22cc33dd44ee55ff6600aa11bb22cc33")
	if store.GetBalance(address).Sign() != 0 {
		t.Fatal("fresh account balance must be zero")
	}

	store.AddBalance(address, big.NewInt(150))
	store.SubBalance(address, big.NewInt(50))

	if store.GetBalance(address).Cmp(big.NewInt(100)) != 0 {
		t.Fatalf("wrong balance: %s", store.GetBalance(address))
	}

	_, _, err := mutableTree.Commit(store)
	if err != nil {
		t.Fatalf("commit failed: %s", err)
	}

	reloaded := NewAccounts(b, mutableTree.GetLastImmutable())
	if reloaded.GetBalance(address).Cmp(big.NewInt(100)) != 0 {
		t.Fatalf("balance lost after commit: %s", reloaded.GetBalance(address))
	}
}

func TestAccountsCustodyDelta(t *testing.T) {
	t.Parallel()
	memDB := db.NewMemDB()
	mutableTree, _ := tree.NewMutableTree(0, memDB, 1024, 0)

	b := bus.NewBus()
	check := checker.NewChecker(b)

	store := NewAccounts(b, mutableTree.GetLastImmutable())

	store.AddBalance(types.CustodyAddress, big.NewInt(300))
	check.AddStake(big.NewInt(300))

	if err := check.Check(); err != nil {
		t.Fatalf("custody delta must be tracked: %s", err)
	}

	store.SubBalance(types.CustodyAddress, big.NewInt(100))
	if err := check.Check(); err == nil {
		t.Fatal("unmatched custody delta must fail the check")
	}
}
