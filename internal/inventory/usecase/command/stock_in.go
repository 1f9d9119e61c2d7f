package command

import (
	"fmt"
	"time"

	"github.com/tair/stock-ledger/internal/inventory/domain"
)

// StockInCommand represents the command to record an inbound movement
type StockInCommand struct {
	Category      string
	ProductCode   string
	Size          string
	PurchasePrice float64
	Quantity      int
}

// StockInHandler handles stock-in commands
type StockInHandler struct {
	repo domain.LedgerRepository
}

// NewStockInHandler creates a new stock-in handler
func NewStockInHandler(repo domain.LedgerRepository) *StockInHandler {
	return &StockInHandler{repo: repo}
}

// Handle validates the command, stamps the event and applies it. The event
// append and the lot upsert commit together; once inputs are valid the
// operation cannot fail on business grounds.
func (h *StockInHandler) Handle(cmd StockInCommand) (*domain.StockInEvent, error) {
	if cmd.Category == "" {
		return nil, fmt.Errorf("category is required")
	}
	if cmd.ProductCode == "" {
		return nil, fmt.Errorf("product_code is required")
	}
	if cmd.Size == "" {
		return nil, fmt.Errorf("size is required")
	}
	if cmd.Quantity <= 0 {
		return nil, fmt.Errorf("quantity must be a positive integer")
	}
	if cmd.PurchasePrice < 0 {
		return nil, fmt.Errorf("purchase_price cannot be negative")
	}

	event := &domain.StockInEvent{
		Category:      cmd.Category,
		ProductCode:   cmd.ProductCode,
		Size:          cmd.Size,
		PurchasePrice: cmd.PurchasePrice,
		Quantity:      cmd.Quantity,
		CreatedAt:     time.Now(),
	}

	if err := h.repo.RecordStockIn(event); err != nil {
		return nil, fmt.Errorf("failed to record stock-in: %w", err)
	}

	return event, nil
}
