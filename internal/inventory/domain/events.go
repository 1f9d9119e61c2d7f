package domain

import "time"

// StockInEvent is the append-only record of an inbound movement. It is written
// exactly once per stock-in and never mutated or deleted.
type StockInEvent struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Category      string    `json:"category" gorm:"not null"`
	ProductCode   string    `json:"product_code" gorm:"not null;index"`
	Size          string    `json:"size" gorm:"not null"`
	PurchasePrice float64   `json:"purchase_price" gorm:"not null"`
	Quantity      int       `json:"quantity" gorm:"not null"`
	CreatedAt     time.Time `json:"created_at" gorm:"index"`
}

// TableName specifies the table name
func (StockInEvent) TableName() string {
	return "stock_in_events"
}

// StockOutEvent records an outbound movement together with the lot attributes
// captured at sale time and the derived profit. It is deletable only through
// the explicit reversal operation.
type StockOutEvent struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Category      string    `json:"category" gorm:"not null"`
	ProductCode   string    `json:"product_code" gorm:"not null;index"`
	Size          string    `json:"size" gorm:"not null"`
	PurchasePrice float64   `json:"purchase_price" gorm:"not null"`
	SellPrice     float64   `json:"sell_price" gorm:"not null"`
	Quantity      int       `json:"quantity" gorm:"not null"`
	Profit        float64   `json:"profit" gorm:"not null"`
	CreatedAt     time.Time `json:"created_at" gorm:"index"`
}

// TableName specifies the table name
func (StockOutEvent) TableName() string {
	return "stock_out_events"
}

// Adjustment is the internal log of silent write-offs. It exists so manual
// inventory corrections leave at least a row behind; it is not part of the
// public movement history.
type Adjustment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	LotID     uint      `json:"lot_id" gorm:"not null;index"`
	Quantity  int       `json:"quantity" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name
func (Adjustment) TableName() string {
	return "adjustments"
}

// Profit computes the per-unit margin times quantity for a prospective
// stock-out. Negative results are valid, selling below cost is allowed.
func Profit(sellPrice, purchasePrice float64, quantity int) float64 {
	return (sellPrice - purchasePrice) * float64(quantity)
}
