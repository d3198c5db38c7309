package models

// Priority drives how aggressively a product is restocked.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Category is assigned automatically at creation from the restock quantity
// and never changes afterwards.
type Category string

const (
	CategoryHighVolume Category = "high_volume"
	CategoryLowVolume  Category = "low_volume"
)

// Status classifies current stock against the minimum threshold.
type Status string

const (
	StatusOK             Status = "ok"
	StatusBelowThreshold Status = "below_threshold"
	StatusOutOfStock     Status = "out_of_stock"
)

// Product represents a product record in the inventory store.
type Product struct {
	ProductID       string   `json:"product_id"`
	Name            string   `json:"name"`
	StockQuantity   int      `json:"stock_quantity"`
	MinThreshold    int      `json:"min_threshold"`
	RestockQuantity int      `json:"restock_quantity"`
	Priority        Priority `json:"priority"`
	Category        Category `json:"category"`
}
