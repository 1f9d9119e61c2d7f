package command

import (
	"testing"

	"github.com/tair/stock-ledger/internal/inventory/repository"
)

func seedLot(t *testing.T, repo *repository.MemoryLedgerRepository, qty int) uint {
	t.Helper()
	_, err := NewStockInHandler(repo).Handle(StockInCommand{
		Category:      "衣服",
		ProductCode:   "A1",
		Size:          "M",
		PurchasePrice: 10.0,
		Quantity:      qty,
	})
	if err != nil {
		t.Fatalf("seed stock-in failed: %v", err)
	}
	lots, _ := repo.FindLots("")
	return lots[0].ID
}

func TestStockOut_Success(t *testing.T) {
	repo := repository.NewMemoryLedgerRepository()
	lotID := seedLot(t, repo, 5)

	result, err := NewStockOutHandler(repo).Handle(StockOutCommand{
		LotID:     lotID,
		SellPrice: 15.0,
		Quantity:  3,
	})
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if !result.Success {
		t.Fatalf("expected success, got %q", result.Message)
	}
	if result.Event.Profit != 15.0 {
		t.Errorf("expected profit 15, got %v", result.Event.Profit)
	}

	lot, _ := repo.FindLotByID(lotID)
	if lot.Quantity != 2 {
		t.Errorf("expected quantity 2, got %d", lot.Quantity)
	}
}

func TestStockOut_NegativeProfitAllowed(t *testing.T) {
	repo := repository.NewMemoryLedgerRepository()
	lotID := seedLot(t, repo, 5)

	result, err := NewStockOutHandler(repo).Handle(StockOutCommand{
		LotID:     lotID,
		SellPrice: 7.0,
		Quantity:  2,
	})
	if err != nil || !result.Success {
		t.Fatalf("expected success selling below cost, got err=%v result=%+v", err, result)
	}
	if result.Event.Profit != -6.0 {
		t.Errorf("expected profit -6, got %v", result.Event.Profit)
	}
}

func TestStockOut_InsufficientStockIsResultNotError(t *testing.T) {
	repo := repository.NewMemoryLedgerRepository()
	lotID := seedLot(t, repo, 2)

	result, err := NewStockOutHandler(repo).Handle(StockOutCommand{
		LotID:     lotID,
		SellPrice: 15.0,
		Quantity:  10,
	})
	if err != nil {
		t.Fatalf("business failure must not be an error: %v", err)
	}
	if result.Success {
		t.Fatal("expected failure result")
	}
	if result.Message != "insufficient stock" {
		t.Errorf("unexpected message %q", result.Message)
	}

	lot, _ := repo.FindLotByID(lotID)
	if lot.Quantity != 2 {
		t.Errorf("expected quantity unchanged at 2, got %d", lot.Quantity)
	}
}

func TestStockOut_Validation(t *testing.T) {
	repo := repository.NewMemoryLedgerRepository()
	handler := NewStockOutHandler(repo)

	if _, err := handler.Handle(StockOutCommand{SellPrice: 15, Quantity: 1}); err == nil {
		t.Error("expected error for missing lot_id")
	}
	if _, err := handler.Handle(StockOutCommand{LotID: 1, SellPrice: 15, Quantity: 0}); err == nil {
		t.Error("expected error for zero quantity")
	}
	if _, err := handler.Handle(StockOutCommand{LotID: 1, SellPrice: -1, Quantity: 1}); err == nil {
		t.Error("expected error for negative sell price")
	}
}
