package handlers

import "github.com/pbarbosa/restock-tracker/internal/models"

type ProductRequest struct {
	ProductID       string `json:"product_id"`
	Name            string `json:"name"`
	StockQuantity   int    `json:"stock_quantity"`
	MinThreshold    int    `json:"min_threshold"`
	RestockQuantity int    `json:"restock_quantity"`
	Priority        string `json:"priority"`
	Category        string `json:"category,omitempty"` // ignored, assigned by the service
}

type ProductResponse struct {
	Message string         `json:"message"`
	Product models.Product `json:"product"`
}

type InventoryResponse struct {
	ProductID     string          `json:"product_id"`
	StockQuantity int             `json:"stock_quantity"`
	Status        models.Status   `json:"status"`
	Priority      models.Priority `json:"priority"`
}

type PurchaseRequest struct {
	Quantity int `json:"quantity"`
}

type PurchaseResponse struct {
	Message          string `json:"message"`
	RemainingStock   int    `json:"remaining_stock"`
	RestockTriggered bool   `json:"restock_triggered"`
}

type RestockResponse struct {
	Message         string `json:"message"`
	ProductID       string `json:"product_id"`
	StockBefore     int    `json:"stock_before"`
	StockAfter      int    `json:"stock_after"`
	RestockQuantity int    `json:"restock_quantity"`
}

type ServiceInfo struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}
