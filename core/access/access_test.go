package access

import (
	"testing"

	"github.com/StakeportTeam/stakeport-go-node/core/types"
)

func TestConfigKeeper(t *testing.T) {
	t.Parallel()
	admin := types.HexToAddress("Sx04bea23efb744dc93b4fda4c20bf4a21c6e195f1")
	keeper := NewConfigKeeper(admin)

	if !keeper.IsAdmin(admin) {
		t.Fatal("configured admin must be recognized")
	}
	if keeper.IsAdmin(types.HexToAddress("Sx18467bbb64a8edf890201d526c35957d82be3d95")) {
		t.Fatal("non-admin must not be recognized")
	}
}

func TestConfigKeeperNoAdmin(t *testing.T) {
	t.Parallel()
	keeper := NewConfigKeeper(types.Address{})

	if keeper.IsAdmin(types.Address{}) {
		t.Fatal("zero address must not be admin when none is configured")
	}
	if keeper.IsAdmin(types.HexToAddress("Sx04bea23efb744dc93b4fda4c20bf4a21c6e195f1")) {
		t.Fatal("no address must be admin when none is configured")
	}
}
