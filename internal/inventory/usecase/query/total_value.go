package query

import (
	"fmt"

	"github.com/tair/stock-ledger/internal/inventory/domain"
)

// TotalValueHandler handles on-hand value queries
type TotalValueHandler struct {
	repo domain.LedgerRepository
}

// NewTotalValueHandler creates a new total value handler
func NewTotalValueHandler(repo domain.LedgerRepository) *TotalValueHandler {
	return &TotalValueHandler{repo: repo}
}

// Handle returns the purchase value of all stock on hand, 0 for an empty
// inventory.
func (h *TotalValueHandler) Handle() (float64, error) {
	total, err := h.repo.TotalValue()
	if err != nil {
		return 0, fmt.Errorf("failed to compute total value: %w", err)
	}
	return total, nil
}
