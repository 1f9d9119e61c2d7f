package query

import (
	"fmt"

	"github.com/tair/stock-ledger/internal/inventory/domain"
)

// SearchInventoryQuery represents the query to search lots by product code
type SearchInventoryQuery struct {
	Code string
}

// SearchInventoryHandler handles inventory search queries
type SearchInventoryHandler struct {
	repo domain.LedgerRepository
}

// NewSearchInventoryHandler creates a new search handler
func NewSearchInventoryHandler(repo domain.LedgerRepository) *SearchInventoryHandler {
	return &SearchInventoryHandler{repo: repo}
}

// Handle returns lots on hand whose product code contains the substring.
func (h *SearchInventoryHandler) Handle(q SearchInventoryQuery) ([]domain.Lot, error) {
	if q.Code == "" {
		return nil, fmt.Errorf("code is required")
	}

	lots, err := h.repo.SearchLotsByCode(q.Code)
	if err != nil {
		return nil, fmt.Errorf("failed to search inventory: %w", err)
	}
	return lots, nil
}
