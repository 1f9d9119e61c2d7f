package command

import (
	"errors"
	"fmt"

	"github.com/tair/stock-ledger/internal/inventory/domain"
)

// AdjustInventoryCommand represents the command to write off lot quantity
// without a sale
type AdjustInventoryCommand struct {
	LotID    uint
	Quantity int
}

// AdjustInventoryHandler handles inventory adjustment commands
type AdjustInventoryHandler struct {
	repo domain.LedgerRepository
}

// NewAdjustInventoryHandler creates a new adjustment handler
func NewAdjustInventoryHandler(repo domain.LedgerRepository) *AdjustInventoryHandler {
	return &AdjustInventoryHandler{repo: repo}
}

// Handle decrements the lot. Unlike a stock-out this records no sale price and
// no profit and never appears in the movement history; the store keeps an
// internal adjustment row only.
func (h *AdjustInventoryHandler) Handle(cmd AdjustInventoryCommand) (*Result, error) {
	if cmd.LotID == 0 {
		return nil, fmt.Errorf("lot_id is required")
	}
	if cmd.Quantity <= 0 {
		return nil, fmt.Errorf("quantity must be a positive integer")
	}

	err := h.repo.AdjustLotQuantity(cmd.LotID, cmd.Quantity)
	if errors.Is(err, domain.ErrLotNotFound) {
		return failure("lot not found"), nil
	}
	if errors.Is(err, domain.ErrQuantityExceedsStock) {
		return failure("quantity exceeds stock on hand"), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to adjust inventory: %w", err)
	}

	return success("inventory adjusted"), nil
}
