package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/tair/stock-ledger/internal/inventory/domain"
)

func stockIn(t *testing.T, repo *MemoryLedgerRepository, category, code, size string, price float64, qty int) *domain.StockInEvent {
	t.Helper()
	event := &domain.StockInEvent{
		Category:      category,
		ProductCode:   code,
		Size:          size,
		PurchasePrice: price,
		Quantity:      qty,
		CreatedAt:     time.Now(),
	}
	if err := repo.RecordStockIn(event); err != nil {
		t.Fatalf("RecordStockIn failed: %v", err)
	}
	return event
}

func TestRecordStockIn_AccumulatesOnNaturalKey(t *testing.T) {
	repo := NewMemoryLedgerRepository()

	stockIn(t, repo, "衣服", "A1", "M", 10.0, 5)
	stockIn(t, repo, "衣服", "A1", "M", 10.0, 3)
	// Same product and size, different purchase price: a distinct lot.
	stockIn(t, repo, "衣服", "A1", "M", 12.0, 2)

	lots, err := repo.FindLots("")
	if err != nil {
		t.Fatalf("FindLots failed: %v", err)
	}
	if len(lots) != 2 {
		t.Fatalf("expected 2 lots, got %d", len(lots))
	}

	var accumulated *domain.Lot
	for i := range lots {
		if lots[i].PurchasePrice == 10.0 {
			accumulated = &lots[i]
		}
	}
	if accumulated == nil {
		t.Fatal("lot with purchase price 10.0 not found")
	}
	if accumulated.Quantity != 8 {
		t.Errorf("expected quantity 8, got %d", accumulated.Quantity)
	}
}

func TestRecordStockIn_LastCategoryWins(t *testing.T) {
	repo := NewMemoryLedgerRepository()

	stockIn(t, repo, "衣服", "A1", "M", 10.0, 5)
	stockIn(t, repo, "配件", "A1", "M", 10.0, 1)

	lots, _ := repo.FindLots("")
	if len(lots) != 1 {
		t.Fatalf("expected 1 lot, got %d", len(lots))
	}
	if lots[0].Category != "配件" {
		t.Errorf("expected category of last stock-in, got %q", lots[0].Category)
	}
	if lots[0].Quantity != 6 {
		t.Errorf("expected quantity 6, got %d", lots[0].Quantity)
	}
}

func TestRecordStockOut_ComputesProfitAndDecrements(t *testing.T) {
	repo := NewMemoryLedgerRepository()
	stockIn(t, repo, "衣服", "A1", "M", 10.0, 5)

	lots, _ := repo.FindLots("")
	event, err := repo.RecordStockOut(lots[0].ID, 15.0, 3)
	if err != nil {
		t.Fatalf("RecordStockOut failed: %v", err)
	}
	if event.Profit != 15.0 {
		t.Errorf("expected profit 15, got %v", event.Profit)
	}
	if event.PurchasePrice != 10.0 {
		t.Errorf("expected captured purchase price 10, got %v", event.PurchasePrice)
	}

	lot, _ := repo.FindLotByID(lots[0].ID)
	if lot.Quantity != 2 {
		t.Errorf("expected quantity 2 after stock-out, got %d", lot.Quantity)
	}
}

func TestRecordStockOut_InsufficientStock(t *testing.T) {
	repo := NewMemoryLedgerRepository()
	stockIn(t, repo, "衣服", "A1", "M", 10.0, 2)
	lots, _ := repo.FindLots("")

	_, err := repo.RecordStockOut(lots[0].ID, 15.0, 10)
	if !errors.Is(err, domain.ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}

	// The failed stock-out must not touch the lot.
	lot, _ := repo.FindLotByID(lots[0].ID)
	if lot.Quantity != 2 {
		t.Errorf("expected quantity unchanged at 2, got %d", lot.Quantity)
	}

	if _, err := repo.RecordStockOut(9999, 15.0, 1); !errors.Is(err, domain.ErrInsufficientStock) {
		t.Errorf("expected ErrInsufficientStock for missing lot, got %v", err)
	}
}

func TestRecordStockOut_ToZeroKeepsLot(t *testing.T) {
	repo := NewMemoryLedgerRepository()
	stockIn(t, repo, "衣服", "A1", "M", 10.0, 2)
	lots, _ := repo.FindLots("")

	if _, err := repo.RecordStockOut(lots[0].ID, 15.0, 2); err != nil {
		t.Fatalf("RecordStockOut failed: %v", err)
	}

	// Empty lot: gone from listings, still there for point lookup.
	listed, _ := repo.FindLots("")
	if len(listed) != 0 {
		t.Errorf("expected empty listing, got %d lots", len(listed))
	}
	lot, err := repo.FindLotByID(lots[0].ID)
	if err != nil {
		t.Fatalf("expected empty lot to remain, got %v", err)
	}
	if !lot.Empty() {
		t.Errorf("expected quantity 0, got %d", lot.Quantity)
	}
}

func TestReverseStockOut_RestoresQuantityAndDeletesEvent(t *testing.T) {
	repo := NewMemoryLedgerRepository()
	stockIn(t, repo, "衣服", "A1", "M", 10.0, 5)
	lots, _ := repo.FindLots("")

	event, err := repo.RecordStockOut(lots[0].ID, 15.0, 3)
	if err != nil {
		t.Fatalf("RecordStockOut failed: %v", err)
	}

	reversed, err := repo.ReverseStockOut(event.ID)
	if err != nil {
		t.Fatalf("ReverseStockOut failed: %v", err)
	}
	if reversed.ID != event.ID {
		t.Errorf("expected reversed event %d, got %d", event.ID, reversed.ID)
	}

	lot, _ := repo.FindLotByID(lots[0].ID)
	if lot.Quantity != 5 {
		t.Errorf("expected quantity restored to 5, got %d", lot.Quantity)
	}

	events, _ := repo.ListStockOutEvents()
	if len(events) != 0 {
		t.Errorf("expected event to be deleted, got %d events", len(events))
	}

	if _, err := repo.ReverseStockOut(event.ID); !errors.Is(err, domain.ErrEventNotFound) {
		t.Errorf("expected ErrEventNotFound on second reversal, got %v", err)
	}
}

func TestAdjustLotQuantity_SilentWriteOff(t *testing.T) {
	repo := NewMemoryLedgerRepository()
	stockIn(t, repo, "衣服", "A1", "M", 10.0, 2)
	lots, _ := repo.FindLots("")

	if err := repo.AdjustLotQuantity(lots[0].ID, 2); err != nil {
		t.Fatalf("AdjustLotQuantity failed: %v", err)
	}

	lot, _ := repo.FindLotByID(lots[0].ID)
	if lot.Quantity != 0 {
		t.Errorf("expected quantity 0, got %d", lot.Quantity)
	}

	// No movement event appears in the public history.
	events, _ := repo.ListStockOutEvents()
	if len(events) != 0 {
		t.Errorf("adjustment must not create stock-out events, got %d", len(events))
	}
}

func TestAdjustLotQuantity_Errors(t *testing.T) {
	repo := NewMemoryLedgerRepository()
	stockIn(t, repo, "衣服", "A1", "M", 10.0, 2)
	lots, _ := repo.FindLots("")

	if err := repo.AdjustLotQuantity(9999, 1); !errors.Is(err, domain.ErrLotNotFound) {
		t.Errorf("expected ErrLotNotFound, got %v", err)
	}
	if err := repo.AdjustLotQuantity(lots[0].ID, 3); !errors.Is(err, domain.ErrQuantityExceedsStock) {
		t.Errorf("expected ErrQuantityExceedsStock, got %v", err)
	}

	lot, _ := repo.FindLotByID(lots[0].ID)
	if lot.Quantity != 2 {
		t.Errorf("expected quantity unchanged at 2, got %d", lot.Quantity)
	}
}

func TestFindLots_OrderAndCategoryFilter(t *testing.T) {
	repo := NewMemoryLedgerRepository()
	stockIn(t, repo, "鞋子", "B2", "42", 30.0, 1)
	stockIn(t, repo, "衣服", "A1", "S", 10.0, 1)
	stockIn(t, repo, "衣服", "A1", "M", 10.0, 1)

	lots, _ := repo.FindLots("")
	if len(lots) != 3 {
		t.Fatalf("expected 3 lots, got %d", len(lots))
	}
	if lots[0].ProductCode != "A1" || lots[0].Size != "M" {
		t.Errorf("expected (A1, M) first, got (%s, %s)", lots[0].ProductCode, lots[0].Size)
	}
	if lots[2].ProductCode != "B2" {
		t.Errorf("expected B2 last, got %s", lots[2].ProductCode)
	}

	clothes, _ := repo.FindLots("衣服")
	if len(clothes) != 2 {
		t.Errorf("expected 2 lots in category, got %d", len(clothes))
	}
}

func TestSearchLotsByCode_Substring(t *testing.T) {
	repo := NewMemoryLedgerRepository()
	stockIn(t, repo, "衣服", "AB12", "M", 10.0, 1)
	stockIn(t, repo, "衣服", "XB19", "M", 10.0, 1)
	stockIn(t, repo, "衣服", "CD34", "M", 10.0, 1)

	lots, err := repo.SearchLotsByCode("B1")
	if err != nil {
		t.Fatalf("SearchLotsByCode failed: %v", err)
	}
	if len(lots) != 2 {
		t.Errorf("expected 2 matches, got %d", len(lots))
	}
}

func TestTotalValue(t *testing.T) {
	repo := NewMemoryLedgerRepository()

	total, err := repo.TotalValue()
	if err != nil {
		t.Fatalf("TotalValue failed: %v", err)
	}
	if total != 0 {
		t.Errorf("expected 0 for empty inventory, got %v", total)
	}

	stockIn(t, repo, "衣服", "A1", "M", 10.0, 5)
	stockIn(t, repo, "鞋子", "B2", "42", 30.0, 2)

	total, _ = repo.TotalValue()
	if total != 110.0 {
		t.Errorf("expected 110, got %v", total)
	}
}

func TestPeriodSummary_BucketInvariants(t *testing.T) {
	repo := NewMemoryLedgerRepository()
	stockIn(t, repo, "衣服", "A1", "M", 10.0, 10)
	lots, _ := repo.FindLots("")

	if _, err := repo.RecordStockOut(lots[0].ID, 15.0, 3); err != nil {
		t.Fatalf("RecordStockOut failed: %v", err)
	}
	if _, err := repo.RecordStockOut(lots[0].ID, 8.0, 2); err != nil {
		t.Fatalf("RecordStockOut failed: %v", err)
	}

	buckets, err := repo.PeriodSummary(domain.GranularityMonth)
	if err != nil {
		t.Fatalf("PeriodSummary failed: %v", err)
	}
	if len(buckets) != 1 {
		t.Fatalf("expected 1 bucket, got %d", len(buckets))
	}

	b := buckets[0]
	if b.Period != time.Now().Format("2006-01") {
		t.Errorf("expected current month bucket, got %q", b.Period)
	}
	if b.Revenue != 15.0*3+8.0*2 {
		t.Errorf("unexpected revenue %v", b.Revenue)
	}
	if b.Cost != 10.0*5 {
		t.Errorf("unexpected cost %v", b.Cost)
	}
	if b.TotalQuantity != 5 {
		t.Errorf("unexpected quantity %d", b.TotalQuantity)
	}
	if b.Revenue-b.Cost != b.TotalProfit {
		t.Errorf("revenue - cost = %v, want profit %v", b.Revenue-b.Cost, b.TotalProfit)
	}

	yearly, _ := repo.PeriodSummary(domain.GranularityYear)
	if len(yearly) != 1 || yearly[0].Period != time.Now().Format("2006") {
		t.Errorf("unexpected yearly buckets %+v", yearly)
	}
}
