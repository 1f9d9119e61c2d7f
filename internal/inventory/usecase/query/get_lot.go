package query

import (
	"fmt"

	"github.com/tair/stock-ledger/internal/inventory/domain"
)

// GetLotQuery represents the query to fetch one lot by ID
type GetLotQuery struct {
	ID uint
}

// GetLotHandler handles get lot queries
type GetLotHandler struct {
	repo domain.LedgerRepository
}

// NewGetLotHandler creates a new get lot handler
func NewGetLotHandler(repo domain.LedgerRepository) *GetLotHandler {
	return &GetLotHandler{repo: repo}
}

// Handle returns the lot, including empty ones. A missing ID surfaces
// domain.ErrLotNotFound for the delivery layer to map.
func (h *GetLotHandler) Handle(q GetLotQuery) (*domain.Lot, error) {
	if q.ID == 0 {
		return nil, fmt.Errorf("id is required")
	}

	lot, err := h.repo.FindLotByID(q.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get lot: %w", err)
	}
	return lot, nil
}
