package command

import (
	"errors"
	"fmt"

	"github.com/tair/stock-ledger/internal/inventory/domain"
)

// ReverseStockOutCommand represents the command to undo a recorded stock-out
type ReverseStockOutCommand struct {
	EventID uint
}

// ReverseStockOutResult is a mutation result plus the reversed event.
type ReverseStockOutResult struct {
	Result
	Event *domain.StockOutEvent `json:"event,omitempty"`
}

// ReverseStockOutHandler handles reversal commands
type ReverseStockOutHandler struct {
	repo domain.LedgerRepository
}

// NewReverseStockOutHandler creates a new reversal handler
func NewReverseStockOutHandler(repo domain.LedgerRepository) *ReverseStockOutHandler {
	return &ReverseStockOutHandler{repo: repo}
}

// Handle deletes the stock-out event and puts its quantity back on the lot
// with the matching natural key. This is the only operation that removes a
// ledger record.
func (h *ReverseStockOutHandler) Handle(cmd ReverseStockOutCommand) (*ReverseStockOutResult, error) {
	if cmd.EventID == 0 {
		return nil, fmt.Errorf("event_id is required")
	}

	event, err := h.repo.ReverseStockOut(cmd.EventID)
	if errors.Is(err, domain.ErrEventNotFound) {
		return &ReverseStockOutResult{Result: *failure("stock-out event not found")}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to reverse stock-out: %w", err)
	}

	return &ReverseStockOutResult{
		Result: *success("stock-out reversed"),
		Event:  event,
	}, nil
}
