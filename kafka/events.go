package kafka

import "time"

// StockMovementEvent mirrors a committed ledger mutation onto the
// stock-movements topic. Reversals carry the quantity of the undone
// stock-out; profit and sell price are zero for inbound movements.
type StockMovementEvent struct {
	EventID       string    `json:"event_id"`
	EventType     string    `json:"event_type"`
	RecordID      uint      `json:"record_id"`
	Category      string    `json:"category"`
	ProductCode   string    `json:"product_code"`
	Size          string    `json:"size"`
	PurchasePrice float64   `json:"purchase_price"`
	SellPrice     float64   `json:"sell_price,omitempty"`
	Quantity      int       `json:"quantity"`
	Profit        float64   `json:"profit,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeStockInRecorded  = "stock.in.recorded"
	EventTypeStockOutRecorded = "stock.out.recorded"
	EventTypeStockOutReversed = "stock.out.reversed"
)

// Kafka topics
const (
	TopicStockMovements = "stock-movements"
)
