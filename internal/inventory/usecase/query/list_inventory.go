package query

import (
	"fmt"

	"github.com/tair/stock-ledger/internal/inventory/domain"
)

// ListInventoryQuery represents the query to list lots on hand
type ListInventoryQuery struct {
	Category string
}

// ListInventoryHandler handles list inventory queries
type ListInventoryHandler struct {
	repo domain.LedgerRepository
}

// NewListInventoryHandler creates a new list inventory handler
func NewListInventoryHandler(repo domain.LedgerRepository) *ListInventoryHandler {
	return &ListInventoryHandler{repo: repo}
}

// Handle returns lots with stock on hand, ordered by product code and size.
// Empty lots are filtered out, not deleted.
func (h *ListInventoryHandler) Handle(q ListInventoryQuery) ([]domain.Lot, error) {
	lots, err := h.repo.FindLots(q.Category)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}
	return lots, nil
}
