package command

import (
	"errors"
	"fmt"

	"github.com/tair/stock-ledger/internal/inventory/domain"
)

// StockOutCommand represents the command to record an outbound movement
type StockOutCommand struct {
	LotID     uint
	SellPrice float64
	Quantity  int
}

// StockOutResult is a mutation result plus the recorded event on success.
type StockOutResult struct {
	Result
	Event *domain.StockOutEvent `json:"event,omitempty"`
}

// StockOutHandler handles stock-out commands
type StockOutHandler struct {
	repo domain.LedgerRepository
}

// NewStockOutHandler creates a new stock-out handler
func NewStockOutHandler(repo domain.LedgerRepository) *StockOutHandler {
	return &StockOutHandler{repo: repo}
}

// Handle records the stock-out. A missing lot and a lot holding fewer units
// than requested both come back as "insufficient stock" with the lot left
// untouched; profit may be negative, selling below cost is allowed.
func (h *StockOutHandler) Handle(cmd StockOutCommand) (*StockOutResult, error) {
	if cmd.LotID == 0 {
		return nil, fmt.Errorf("lot_id is required")
	}
	if cmd.Quantity <= 0 {
		return nil, fmt.Errorf("quantity must be a positive integer")
	}
	if cmd.SellPrice < 0 {
		return nil, fmt.Errorf("sell_price cannot be negative")
	}

	event, err := h.repo.RecordStockOut(cmd.LotID, cmd.SellPrice, cmd.Quantity)
	if errors.Is(err, domain.ErrInsufficientStock) {
		return &StockOutResult{Result: *failure("insufficient stock")}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to record stock-out: %w", err)
	}

	return &StockOutResult{
		Result: *success("stock-out recorded"),
		Event:  event,
	}, nil
}
