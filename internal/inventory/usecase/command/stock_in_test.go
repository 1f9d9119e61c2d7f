package command

import (
	"testing"

	"github.com/tair/stock-ledger/internal/inventory/repository"
)

func TestStockIn_Success(t *testing.T) {
	repo := repository.NewMemoryLedgerRepository()
	handler := NewStockInHandler(repo)

	event, err := handler.Handle(StockInCommand{
		Category:      "衣服",
		ProductCode:   "A1",
		Size:          "M",
		PurchasePrice: 10.0,
		Quantity:      5,
	})
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if event.ID == 0 {
		t.Error("expected event to be assigned an ID")
	}
	if event.CreatedAt.IsZero() {
		t.Error("expected event to be timestamped")
	}

	lots, _ := repo.FindLots("")
	if len(lots) != 1 || lots[0].Quantity != 5 {
		t.Errorf("expected one lot holding 5, got %+v", lots)
	}
}

func TestStockIn_SequenceAccumulates(t *testing.T) {
	repo := repository.NewMemoryLedgerRepository()
	handler := NewStockInHandler(repo)

	quantities := []int{5, 3, 7}
	categories := []string{"衣服", "衣服", "配件"}
	for i, qty := range quantities {
		_, err := handler.Handle(StockInCommand{
			Category:      categories[i],
			ProductCode:   "A1",
			Size:          "M",
			PurchasePrice: 10.0,
			Quantity:      qty,
		})
		if err != nil {
			t.Fatalf("Handle failed: %v", err)
		}
	}

	lots, _ := repo.FindLots("")
	if len(lots) != 1 {
		t.Fatalf("expected 1 lot, got %d", len(lots))
	}
	if lots[0].Quantity != 15 {
		t.Errorf("expected final quantity 15, got %d", lots[0].Quantity)
	}
	if lots[0].Category != "配件" {
		t.Errorf("expected category of last stock-in, got %q", lots[0].Category)
	}
}

func TestStockIn_Validation(t *testing.T) {
	repo := repository.NewMemoryLedgerRepository()
	handler := NewStockInHandler(repo)

	cases := []struct {
		name string
		cmd  StockInCommand
	}{
		{"missing category", StockInCommand{ProductCode: "A1", Size: "M", PurchasePrice: 10, Quantity: 1}},
		{"missing product code", StockInCommand{Category: "衣服", Size: "M", PurchasePrice: 10, Quantity: 1}},
		{"missing size", StockInCommand{Category: "衣服", ProductCode: "A1", PurchasePrice: 10, Quantity: 1}},
		{"zero quantity", StockInCommand{Category: "衣服", ProductCode: "A1", Size: "M", PurchasePrice: 10, Quantity: 0}},
		{"negative quantity", StockInCommand{Category: "衣服", ProductCode: "A1", Size: "M", PurchasePrice: 10, Quantity: -1}},
		{"negative price", StockInCommand{Category: "衣服", ProductCode: "A1", Size: "M", PurchasePrice: -0.5, Quantity: 1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := handler.Handle(tc.cmd); err == nil {
				t.Error("expected validation error, got none")
			}
		})
	}

	// Nothing may reach storage on validation failure.
	events, _ := repo.ListStockInEvents()
	if len(events) != 0 {
		t.Errorf("expected no events, got %d", len(events))
	}
}
