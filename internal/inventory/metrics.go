package inventory

import "github.com/pbarbosa/restock-tracker/internal/models"

// Metrics is the dashboard summary of the whole inventory.
type Metrics struct {
	TotalProducts       int `json:"total_products"`
	TotalStock          int `json:"total_stock"`
	OutOfStockCount     int `json:"out_of_stock_count"`
	BelowThresholdCount int `json:"below_threshold_count"`
}

// DashboardMetrics computes summary counts over every stored product.
func (s *Service) DashboardMetrics() (Metrics, error) {
	products, err := s.store.Load()
	if err != nil {
		return Metrics{}, err
	}

	m := Metrics{TotalProducts: len(products)}
	for _, p := range products {
		m.TotalStock += p.StockQuantity
		switch ClassifyStatus(p.StockQuantity, p.MinThreshold) {
		case models.StatusOutOfStock:
			m.OutOfStockCount++
		case models.StatusBelowThreshold:
			m.BelowThresholdCount++
		}
	}
	return m, nil
}
