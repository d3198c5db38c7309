package inventory

import "github.com/pbarbosa/restock-tracker/internal/models"

// ClassifyStatus derives the inventory status from current stock and the
// minimum threshold. Total over all non-negative inputs.
func ClassifyStatus(stock, threshold int) models.Status {
	switch {
	case stock == 0:
		return models.StatusOutOfStock
	case stock < threshold:
		return models.StatusBelowThreshold
	default:
		return models.StatusOK
	}
}

// ShouldRestock decides whether a product qualifies for automatic
// restocking. Out of stock always restocks; at or above threshold never
// does. Below threshold the decision tiers by priority: high restocks
// unconditionally, medium at or below half the threshold, low at or below
// a quarter. The fractions are floating-point multiplies, not rationals.
func ShouldRestock(stock, threshold int, priority models.Priority) bool {
	if stock == 0 {
		return true
	}
	if stock >= threshold {
		return false
	}

	switch priority {
	case models.PriorityHigh:
		return stock < threshold
	case models.PriorityMedium:
		return float64(stock) <= float64(threshold)*0.5
	default:
		return float64(stock) <= float64(threshold)*0.25
	}
}

// RestockAmount computes the units added by a restock. High priority gets a
// 20% buffer, high-volume category a 10% buffer, everything else the plain
// restock quantity. Amounts truncate toward zero.
func RestockAmount(restockQty int, priority models.Priority, category models.Category) int {
	switch {
	case priority == models.PriorityHigh:
		return int(float64(restockQty) * 1.2)
	case category == models.CategoryHighVolume:
		return int(float64(restockQty) * 1.1)
	default:
		return restockQty
	}
}

// ApplyRestock runs the restock decision against p and, when it triggers,
// returns p with the computed amount added to stock.
func ApplyRestock(p models.Product) (models.Product, bool) {
	if !ShouldRestock(p.StockQuantity, p.MinThreshold, p.Priority) {
		return p, false
	}
	p.StockQuantity += RestockAmount(p.RestockQuantity, p.Priority, p.Category)
	return p, true
}

// AssignCategory derives the creation-time category from the configured
// restock quantity.
func AssignCategory(restockQty int) models.Category {
	if restockQty > 50 {
		return models.CategoryHighVolume
	}
	return models.CategoryLowVolume
}
