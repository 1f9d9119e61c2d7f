package domain

import "testing"

func TestProfit(t *testing.T) {
	tests := []struct {
		name          string
		sellPrice     float64
		purchasePrice float64
		quantity      int
		want          float64
	}{
		{"markup", 13.0, 10.0, 5, 15.0},
		{"sold at cost", 10.0, 10.0, 3, 0},
		{"sold at loss", 8.0, 10.0, 3, -6.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Profit(tt.sellPrice, tt.purchasePrice, tt.quantity); got != tt.want {
				t.Errorf("Profit() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPeriodBucketProfitRate(t *testing.T) {
	b := PeriodBucket{Revenue: 150.0, Cost: 100.0, TotalProfit: 50.0}
	if got := b.ProfitRate(); got != 50.0 {
		t.Errorf("ProfitRate() = %v, want 50.0", got)
	}

	// Zero cost must not divide.
	b = PeriodBucket{Revenue: 20.0, Cost: 0, TotalProfit: 20.0}
	if got := b.ProfitRate(); got != 0 {
		t.Errorf("ProfitRate() with zero cost = %v, want 0", got)
	}
}

func TestGranularityValid(t *testing.T) {
	if !GranularityMonth.Valid() || !GranularityYear.Valid() {
		t.Error("month and year must be valid granularities")
	}
	if Granularity("week").Valid() {
		t.Error("week must not be a valid granularity")
	}
}

func TestLotHelpers(t *testing.T) {
	lot := Lot{PurchasePrice: 10.0, Quantity: 4}
	if lot.Empty() {
		t.Error("lot with stock must not be empty")
	}
	if got := lot.OnHandValue(); got != 40.0 {
		t.Errorf("OnHandValue() = %v, want 40.0", got)
	}

	lot.Quantity = 0
	if !lot.Empty() {
		t.Error("lot without stock must be empty")
	}
}
