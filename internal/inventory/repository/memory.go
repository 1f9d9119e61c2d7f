package repository

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/tair/stock-ledger/internal/inventory/domain"
)

// MemoryLedgerRepository is an in-memory ledger store. It backs the service in
// development mode and the unit tests; one mutex per repository gives it the
// same single-writer serialization the SQL store gets from transactions.
type MemoryLedgerRepository struct {
	mu sync.Mutex

	lots        map[uint]*domain.Lot
	stockIn     []domain.StockInEvent
	stockOut    []domain.StockOutEvent
	adjustments []domain.Adjustment

	nextLotID      uint
	nextStockInID  uint
	nextStockOutID uint
}

func NewMemoryLedgerRepository() *MemoryLedgerRepository {
	return &MemoryLedgerRepository{
		lots:           map[uint]*domain.Lot{},
		nextLotID:      1,
		nextStockInID:  1,
		nextStockOutID: 1,
	}
}

func (m *MemoryLedgerRepository) findByNaturalKey(code, size string, price float64) *domain.Lot {
	for _, lot := range m.lots {
		if lot.ProductCode == code && lot.Size == size && lot.PurchasePrice == price {
			return lot
		}
	}
	return nil
}

func (m *MemoryLedgerRepository) RecordStockIn(event *domain.StockInEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	event.ID = m.nextStockInID
	m.nextStockInID++
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}
	m.stockIn = append(m.stockIn, *event)

	if lot := m.findByNaturalKey(event.ProductCode, event.Size, event.PurchasePrice); lot != nil {
		lot.Quantity += event.Quantity
		lot.Category = event.Category
		lot.UpdatedAt = event.CreatedAt
		return nil
	}

	lot := &domain.Lot{
		ID:            m.nextLotID,
		Category:      event.Category,
		ProductCode:   event.ProductCode,
		Size:          event.Size,
		PurchasePrice: event.PurchasePrice,
		Quantity:      event.Quantity,
		CreatedAt:     event.CreatedAt,
		UpdatedAt:     event.CreatedAt,
	}
	m.nextLotID++
	m.lots[lot.ID] = lot
	return nil
}

func (m *MemoryLedgerRepository) RecordStockOut(lotID uint, sellPrice float64, quantity int) (*domain.StockOutEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	lot, ok := m.lots[lotID]
	if !ok || lot.Quantity < quantity {
		return nil, domain.ErrInsufficientStock
	}

	now := time.Now()
	event := domain.StockOutEvent{
		ID:            m.nextStockOutID,
		Category:      lot.Category,
		ProductCode:   lot.ProductCode,
		Size:          lot.Size,
		PurchasePrice: lot.PurchasePrice,
		SellPrice:     sellPrice,
		Quantity:      quantity,
		Profit:        domain.Profit(sellPrice, lot.PurchasePrice, quantity),
		CreatedAt:     now,
	}
	m.nextStockOutID++
	m.stockOut = append(m.stockOut, event)

	lot.Quantity -= quantity
	lot.UpdatedAt = now
	return &event, nil
}

func (m *MemoryLedgerRepository) ReverseStockOut(eventID uint) (*domain.StockOutEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := -1
	for i, e := range m.stockOut {
		if e.ID == eventID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, domain.ErrEventNotFound
	}
	event := m.stockOut[idx]

	now := time.Now()
	if lot := m.findByNaturalKey(event.ProductCode, event.Size, event.PurchasePrice); lot != nil {
		lot.Quantity += event.Quantity
		lot.UpdatedAt = now
	} else {
		lot := &domain.Lot{
			ID:            m.nextLotID,
			Category:      event.Category,
			ProductCode:   event.ProductCode,
			Size:          event.Size,
			PurchasePrice: event.PurchasePrice,
			Quantity:      event.Quantity,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		m.nextLotID++
		m.lots[lot.ID] = lot
	}

	m.stockOut = append(m.stockOut[:idx], m.stockOut[idx+1:]...)
	return &event, nil
}

func (m *MemoryLedgerRepository) AdjustLotQuantity(lotID uint, quantity int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	lot, ok := m.lots[lotID]
	if !ok {
		return domain.ErrLotNotFound
	}
	if quantity > lot.Quantity {
		return domain.ErrQuantityExceedsStock
	}

	now := time.Now()
	lot.Quantity -= quantity
	lot.UpdatedAt = now
	m.adjustments = append(m.adjustments, domain.Adjustment{
		ID:        uint(len(m.adjustments) + 1),
		LotID:     lotID,
		Quantity:  quantity,
		CreatedAt: now,
	})
	return nil
}

func (m *MemoryLedgerRepository) FindLotByID(id uint) (*domain.Lot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	lot, ok := m.lots[id]
	if !ok {
		return nil, domain.ErrLotNotFound
	}
	copied := *lot
	return &copied, nil
}

func (m *MemoryLedgerRepository) FindLots(category string) ([]domain.Lot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	lots := make([]domain.Lot, 0, len(m.lots))
	for _, lot := range m.lots {
		if lot.Quantity <= 0 {
			continue
		}
		if category != "" && lot.Category != category {
			continue
		}
		lots = append(lots, *lot)
	}
	sortLots(lots)
	return lots, nil
}

func (m *MemoryLedgerRepository) SearchLotsByCode(code string) ([]domain.Lot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	lots := make([]domain.Lot, 0)
	for _, lot := range m.lots {
		if lot.Quantity > 0 && strings.Contains(lot.ProductCode, code) {
			lots = append(lots, *lot)
		}
	}
	sortLots(lots)
	return lots, nil
}

func (m *MemoryLedgerRepository) ListStockInEvents() ([]domain.StockInEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	events := make([]domain.StockInEvent, len(m.stockIn))
	copy(events, m.stockIn)
	sort.Slice(events, func(i, j int) bool {
		if !events[i].CreatedAt.Equal(events[j].CreatedAt) {
			return events[i].CreatedAt.After(events[j].CreatedAt)
		}
		return events[i].ID > events[j].ID
	})
	return events, nil
}

func (m *MemoryLedgerRepository) ListStockOutEvents() ([]domain.StockOutEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	events := make([]domain.StockOutEvent, len(m.stockOut))
	copy(events, m.stockOut)
	sort.Slice(events, func(i, j int) bool {
		if !events[i].CreatedAt.Equal(events[j].CreatedAt) {
			return events[i].CreatedAt.After(events[j].CreatedAt)
		}
		return events[i].ID > events[j].ID
	})
	return events, nil
}

func (m *MemoryLedgerRepository) TotalValue() (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var total float64
	for _, lot := range m.lots {
		if lot.Quantity > 0 {
			total += lot.OnHandValue()
		}
	}
	return total, nil
}

func (m *MemoryLedgerRepository) PeriodSummary(granularity domain.Granularity) ([]domain.PeriodBucket, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	layout := "2006-01"
	if granularity == domain.GranularityYear {
		layout = "2006"
	}

	byPeriod := map[string]*domain.PeriodBucket{}
	for _, e := range m.stockOut {
		period := e.CreatedAt.Format(layout)
		bucket, ok := byPeriod[period]
		if !ok {
			bucket = &domain.PeriodBucket{Period: period}
			byPeriod[period] = bucket
		}
		bucket.Revenue += e.SellPrice * float64(e.Quantity)
		bucket.Cost += e.PurchasePrice * float64(e.Quantity)
		bucket.TotalProfit += e.Profit
		bucket.TotalQuantity += e.Quantity
	}

	buckets := make([]domain.PeriodBucket, 0, len(byPeriod))
	for _, b := range byPeriod {
		buckets = append(buckets, *b)
	}
	// Fixed-width period labels, lexicographic order matches chronological.
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Period > buckets[j].Period
	})
	return buckets, nil
}

func sortLots(lots []domain.Lot) {
	sort.Slice(lots, func(i, j int) bool {
		if lots[i].ProductCode != lots[j].ProductCode {
			return lots[i].ProductCode < lots[j].ProductCode
		}
		return lots[i].Size < lots[j].Size
	})
}
