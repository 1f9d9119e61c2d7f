package domain

import "errors"

// ErrLotNotFound is returned when a lot with the given ID does not exist.
var ErrLotNotFound = errors.New("lot not found")

// ErrEventNotFound is returned when a stock-out event with the given ID does
// not exist.
var ErrEventNotFound = errors.New("stock-out event not found")

// ErrInsufficientStock is returned when a stock-out requests more units than
// the lot holds, or targets a missing lot.
var ErrInsufficientStock = errors.New("insufficient stock")

// ErrQuantityExceedsStock is returned when an inventory adjustment would drive
// a lot's quantity below zero.
var ErrQuantityExceedsStock = errors.New("quantity exceeds stock on hand")

// ErrDuplicateLot is returned when a write outside the upsert path breaks the
// natural-key uniqueness of the lot table.
var ErrDuplicateLot = errors.New("lot with this natural key already exists")

// LedgerRepository defines the contract for the ledger store. Every mutation
// is atomic: either all of its sub-writes commit or none do, and the
// read-modify-write of a lot's quantity is serialized per lot.
type LedgerRepository interface {
	// RecordStockIn appends the event and upserts the lot identified by the
	// event's natural key: an existing lot gains the event's quantity and its
	// category is overwritten, an absent one is created.
	RecordStockIn(event *StockInEvent) error

	// RecordStockOut captures the lot attributes into a new event with the
	// given sell price and derived profit, and decrements the lot. Returns
	// ErrInsufficientStock when the lot is missing or holds fewer units than
	// requested; the lot quantity never goes negative.
	RecordStockOut(lotID uint, sellPrice float64, quantity int) (*StockOutEvent, error)

	// ReverseStockOut deletes the event and restores its quantity onto the lot
	// matching the event's natural key, creating the lot if it no longer
	// exists. Returns ErrEventNotFound for an unknown event ID.
	ReverseStockOut(eventID uint) (*StockOutEvent, error)

	// AdjustLotQuantity decrements the lot without writing a movement event.
	// Returns ErrLotNotFound or ErrQuantityExceedsStock.
	AdjustLotQuantity(lotID uint, quantity int) error

	// FindLotByID returns the lot, empty lots included. Returns ErrLotNotFound.
	FindLotByID(id uint) (*Lot, error)

	// FindLots lists lots with quantity > 0 ordered by (product_code, size),
	// optionally restricted to one category. An empty category means all.
	FindLots(category string) ([]Lot, error)

	// SearchLotsByCode lists lots with quantity > 0 whose product code
	// contains the given substring, ordered by (product_code, size).
	SearchLotsByCode(code string) ([]Lot, error)

	// ListStockInEvents returns all inbound movements, newest first.
	ListStockInEvents() ([]StockInEvent, error)

	// ListStockOutEvents returns all outbound movements, newest first.
	ListStockOutEvents() ([]StockOutEvent, error)

	// TotalValue sums purchase_price * quantity over lots with quantity > 0;
	// 0 when the inventory is empty.
	TotalValue() (float64, error)

	// PeriodSummary groups stock-out events by calendar month or year,
	// newest bucket first.
	PeriodSummary(granularity Granularity) ([]PeriodBucket, error)
}
