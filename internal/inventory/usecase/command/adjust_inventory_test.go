package command

import (
	"testing"

	"github.com/tair/stock-ledger/internal/inventory/repository"
)

func TestAdjustInventory_WriteOffToZero(t *testing.T) {
	repo := repository.NewMemoryLedgerRepository()
	lotID := seedLot(t, repo, 2)

	result, err := NewAdjustInventoryHandler(repo).Handle(AdjustInventoryCommand{
		LotID:    lotID,
		Quantity: 2,
	})
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if !result.Success {
		t.Fatalf("expected success, got %q", result.Message)
	}

	// The emptied lot disappears from listings but stays addressable.
	lots, _ := repo.FindLots("")
	if len(lots) != 0 {
		t.Errorf("expected empty listing, got %d lots", len(lots))
	}
	lot, err := repo.FindLotByID(lotID)
	if err != nil {
		t.Fatalf("expected lot to remain, got %v", err)
	}
	if lot.Quantity != 0 {
		t.Errorf("expected quantity 0, got %d", lot.Quantity)
	}

	// And no movement event is written.
	events, _ := repo.ListStockOutEvents()
	if len(events) != 0 {
		t.Errorf("expected no stock-out events, got %d", len(events))
	}
}

func TestAdjustInventory_Failures(t *testing.T) {
	repo := repository.NewMemoryLedgerRepository()
	lotID := seedLot(t, repo, 2)
	handler := NewAdjustInventoryHandler(repo)

	result, err := handler.Handle(AdjustInventoryCommand{LotID: 999, Quantity: 1})
	if err != nil {
		t.Fatalf("business failure must not be an error: %v", err)
	}
	if result.Success || result.Message != "lot not found" {
		t.Errorf("expected 'lot not found' failure, got %+v", result)
	}

	result, err = handler.Handle(AdjustInventoryCommand{LotID: lotID, Quantity: 3})
	if err != nil {
		t.Fatalf("business failure must not be an error: %v", err)
	}
	if result.Success || result.Message != "quantity exceeds stock on hand" {
		t.Errorf("expected overshoot failure, got %+v", result)
	}

	if _, err := handler.Handle(AdjustInventoryCommand{LotID: lotID, Quantity: 0}); err == nil {
		t.Error("expected validation error for zero quantity")
	}
}
