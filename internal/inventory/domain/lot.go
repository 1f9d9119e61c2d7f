package domain

import "time"

// Lot is one inventory position. Two lots of the same product and size but a
// different purchase price are distinct rows: the (product_code, size,
// purchase_price) triple is the natural key and is unique.
type Lot struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Category      string    `json:"category" gorm:"not null"`
	ProductCode   string    `json:"product_code" gorm:"not null;uniqueIndex:idx_lots_natural_key,priority:1"`
	Size          string    `json:"size" gorm:"not null;uniqueIndex:idx_lots_natural_key,priority:2"`
	PurchasePrice float64   `json:"purchase_price" gorm:"not null;uniqueIndex:idx_lots_natural_key,priority:3"`
	Quantity      int       `json:"quantity" gorm:"not null;default:0"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName specifies the table name
func (Lot) TableName() string {
	return "lots"
}

// Empty reports whether the lot has been fully consumed. Empty lots stay in
// the table so a later stock-in at the same natural key reuses the row; they
// are only filtered out of listings.
func (l Lot) Empty() bool {
	return l.Quantity == 0
}

// OnHandValue is the purchase value still held in this lot.
func (l Lot) OnHandValue() float64 {
	return l.PurchasePrice * float64(l.Quantity)
}
