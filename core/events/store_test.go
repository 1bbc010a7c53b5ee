package events

import (
	"testing"

	"github.com/StakeportTeam/stakeport-go-node/core/types"
	db "github.com/tendermint/tm-db"
)

func TestIEventsDB(t *testing.T) {
	store := NewEventsStore(db.NewMemDB())

	{
		event := &DepositEvent{
			Address:   types.HexToAddress("Sx04bea23efb744dc93b4fda4c20bf4a21c6e195f1"),
			Amount:    "111497225000000000000",
			Nonce:     1,
			Timestamp: 1700000000,
		}
		store.AddEvent(12, event)
	}
	{
		event := &InitiateWithdrawEvent{
			Address:   types.HexToAddress("Sx18467bbb64a8edf890201d526c35957d82be3d95"),
			Nonce:     2,
			UnlocksAt: 1701209600,
			Timestamp: 1700000000,
		}
		store.AddEvent(12, event)
	}
	err := store.CommitEvents()
	if err != nil {
		t.Fatal(err)
	}

	{
		event := &WithdrawEvent{
			Address:   types.HexToAddress("Sx18467bbb64a8edf890201d526c35957d82be3d95"),
			Amount:    "891977800000000000001",
			Nonce:     2,
			Timestamp: 1701209601,
		}
		store.AddEvent(14, event)
	}
	{
		event := &RestakeEvent{
			Address:   types.HexToAddress("Sx18467bbb64a8edf890201d526c35957d82be3d92"),
			Amount:    "891977800000000000002",
			Nonce:     3,
			Timestamp: 1701209602,
		}
		store.AddEvent(14, event)
	}
	err = store.CommitEvents()
	if err != nil {
		t.Fatal(err)
	}

	{
		event := &SetCooldownEvent{
			Address:   types.HexToAddress("Sx04bea23efb744dc93b4fda4c20bf4a21c6e195f1"),
			Period:    604800,
			Timestamp: 1701209603,
		}
		store.AddEvent(15, event)
	}
	err = store.CommitEvents()
	if err != nil {
		t.Fatal(err)
	}

	loaded := store.LoadEvents(12)
	if len(loaded) != 2 {
		t.Fatalf("count of events not equal 2, got %d", len(loaded))
	}
	if loaded[0].Type() != TypeDepositEvent {
		t.Fatal("invalid event type")
	}
	deposit := loaded[0].(*DepositEvent)
	if deposit.Amount != "111497225000000000000" {
		t.Fatal("invalid Amount")
	}
	if deposit.AddressString() != "Sx04bea23efb744dc93b4fda4c20bf4a21c6e195f1" {
		t.Fatal("invalid Address")
	}
	if deposit.Nonce != 1 {
		t.Fatal("invalid Nonce")
	}

	initiate := loaded[1].(*InitiateWithdrawEvent)
	if initiate.UnlocksAt != 1701209600 {
		t.Fatal("invalid UnlocksAt")
	}

	loaded = store.LoadEvents(14)
	if len(loaded) != 2 {
		t.Fatalf("count of events not equal 2, got %d", len(loaded))
	}
	if loaded[0].Type() != TypeWithdrawEvent {
		t.Fatal("invalid event type")
	}
	if loaded[1].Type() != TypeRestakeEvent {
		t.Fatal("invalid event type")
	}

	loaded = store.LoadEvents(15)
	if len(loaded) != 1 {
		t.Fatalf("count of events not equal 1, got %d", len(loaded))
	}
	cooldown := loaded[0].(*SetCooldownEvent)
	if cooldown.Period != 604800 {
		t.Fatal("invalid Period")
	}

	if len(store.LoadEvents(13)) != 0 {
		t.Fatal("version 13 must have no events")
	}
}

func TestCommitEventsEmpty(t *testing.T) {
	store := NewEventsStore(db.NewMemDB())

	if err := store.CommitEvents(); err != nil {
		t.Fatalf("commit with no pending events failed: %s", err)
	}
	if len(store.LoadEvents(0)) != 0 {
		t.Fatal("version 0 must have no events")
	}

	store.AddEvent(1, &DepositEvent{
		Address:   types.HexToAddress("Sx04bea23efb744dc93b4fda4c20bf4a21c6e195f1"),
		Amount:    "100",
		Nonce:     0,
		Timestamp: 1700000000,
	})
	if err := store.CommitEvents(); err != nil {
		t.Fatal(err)
	}
	if len(store.LoadEvents(1)) != 1 {
		t.Fatal("version 1 must have one event")
	}
}
