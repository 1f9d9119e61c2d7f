package query

import (
	"fmt"

	"github.com/tair/stock-ledger/internal/inventory/domain"
)

// ListStockInEventsHandler handles stock-in history queries
type ListStockInEventsHandler struct {
	repo domain.LedgerRepository
}

// NewListStockInEventsHandler creates a new stock-in history handler
func NewListStockInEventsHandler(repo domain.LedgerRepository) *ListStockInEventsHandler {
	return &ListStockInEventsHandler{repo: repo}
}

// Handle returns all inbound movements, newest first.
func (h *ListStockInEventsHandler) Handle() ([]domain.StockInEvent, error) {
	events, err := h.repo.ListStockInEvents()
	if err != nil {
		return nil, fmt.Errorf("failed to list stock-in events: %w", err)
	}
	return events, nil
}

// ListStockOutEventsHandler handles stock-out history queries
type ListStockOutEventsHandler struct {
	repo domain.LedgerRepository
}

// NewListStockOutEventsHandler creates a new stock-out history handler
func NewListStockOutEventsHandler(repo domain.LedgerRepository) *ListStockOutEventsHandler {
	return &ListStockOutEventsHandler{repo: repo}
}

// Handle returns all outbound movements, newest first.
func (h *ListStockOutEventsHandler) Handle() ([]domain.StockOutEvent, error) {
	events, err := h.repo.ListStockOutEvents()
	if err != nil {
		return nil, fmt.Errorf("failed to list stock-out events: %w", err)
	}
	return events, nil
}
