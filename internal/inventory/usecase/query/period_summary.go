package query

import (
	"fmt"

	"github.com/tair/stock-ledger/internal/inventory/domain"
)

// PeriodSummaryQuery represents the query for bucketed financial summaries
type PeriodSummaryQuery struct {
	Granularity domain.Granularity
}

// PeriodSummaryHandler handles period summary queries
type PeriodSummaryHandler struct {
	repo domain.LedgerRepository
}

// NewPeriodSummaryHandler creates a new period summary handler
func NewPeriodSummaryHandler(repo domain.LedgerRepository) *PeriodSummaryHandler {
	return &PeriodSummaryHandler{repo: repo}
}

// Handle returns stock-out aggregates bucketed by calendar month or year,
// newest bucket first. An unset granularity defaults to month.
func (h *PeriodSummaryHandler) Handle(q PeriodSummaryQuery) ([]domain.PeriodBucket, error) {
	if q.Granularity == "" {
		q.Granularity = domain.GranularityMonth
	}
	if !q.Granularity.Valid() {
		return nil, fmt.Errorf("granularity must be %q or %q", domain.GranularityMonth, domain.GranularityYear)
	}

	buckets, err := h.repo.PeriodSummary(q.Granularity)
	if err != nil {
		return nil, fmt.Errorf("failed to build period summary: %w", err)
	}
	return buckets, nil
}
