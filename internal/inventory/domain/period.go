package domain

// Granularity selects the calendar bucket for period summaries.
type Granularity string

const (
	GranularityMonth Granularity = "month"
	GranularityYear  Granularity = "year"
)

// Valid reports whether the granularity is one of the supported buckets.
func (g Granularity) Valid() bool {
	return g == GranularityMonth || g == GranularityYear
}

// PeriodBucket is one row of the period summary: all stock-out events whose
// timestamp falls into the same calendar month or year, aggregated.
// Revenue - Cost always equals TotalProfit.
type PeriodBucket struct {
	Period        string  `json:"period"`
	Revenue       float64 `json:"revenue"`
	Cost          float64 `json:"cost"`
	TotalProfit   float64 `json:"total_profit"`
	TotalQuantity int     `json:"total_quantity"`
}

// ProfitRate is the margin over cost in percent. It is a pure function of the
// bucket and belongs to the presentation edge; 0 when the bucket has no cost.
func (b PeriodBucket) ProfitRate() float64 {
	if b.Cost == 0 {
		return 0
	}
	return b.TotalProfit / b.Cost * 100
}
