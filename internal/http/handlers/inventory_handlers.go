package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pbarbosa/restock-tracker/internal/inventory"
)

// GetInventoryStatusHandler godoc
// @Summary Get the inventory status of a product
// @Tags inventory
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} InventoryResponse
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /inventory/{id} [get]
func GetInventoryStatusHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if cache != nil {
		if payload, ok := cache.Get(id); ok {
			w.Header().Set("Content-Type", "application/json")
			w.Write(payload)
			return
		}
	}

	status, err := svc.GetStatus(id)
	if err != nil {
		if errors.Is(err, inventory.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch inventory status", http.StatusInternalServerError)
		return
	}

	resp := InventoryResponse{
		ProductID:     status.ProductID,
		StockQuantity: status.StockQuantity,
		Status:        status.Status,
		Priority:      status.Priority,
	}

	payload, err := json.Marshal(resp)
	if err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
		return
	}
	if cache != nil {
		cache.Set(id, payload)
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(payload)
}

// GetAllInventoryHandler godoc
// @Summary Get the inventory status of every product
// @Tags inventory
// @Produce json
// @Success 200 {array} InventoryResponse
// @Failure 500 {string} string "Internal error"
// @Router /inventory [get]
func GetAllInventoryHandler(w http.ResponseWriter, r *http.Request) {
	statuses, err := svc.ListStatus()
	if err != nil {
		http.Error(w, "could not fetch inventory", http.StatusInternalServerError)
		return
	}

	response := make([]InventoryResponse, len(statuses))
	for i, s := range statuses {
		response[i] = InventoryResponse{
			ProductID:     s.ProductID,
			StockQuantity: s.StockQuantity,
			Status:        s.Status,
			Priority:      s.Priority,
		}
	}

	writeJSON(w, http.StatusOK, response)
}

// PurchaseHandler godoc
// @Summary Purchase a quantity of a product
// @Description Decrements stock and triggers the automatic restock decision
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param purchase body PurchaseRequest true "Quantity to purchase"
// @Success 200 {object} PurchaseResponse
// @Failure 400 {string} string "Invalid input or insufficient stock"
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /purchase/{id} [post]
func PurchaseHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req PurchaseRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validatePurchase(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	result, err := svc.Purchase(id, req.Quantity)
	if err != nil {
		var insufficient *inventory.InsufficientStockError
		switch {
		case errors.Is(err, inventory.ErrProductNotFound):
			http.Error(w, "product not found", http.StatusNotFound)
		case errors.As(err, &insufficient):
			msg := fmt.Sprintf("Insufficient stock. Available: %d, Requested: %d",
				insufficient.Available, insufficient.Requested)
			http.Error(w, msg, http.StatusBadRequest)
		default:
			http.Error(w, "could not process purchase", http.StatusInternalServerError)
		}
		return
	}

	if cache != nil {
		cache.Invalidate(id)
	}

	writeJSON(w, http.StatusOK, PurchaseResponse{
		Message:          "Purchase successful",
		RemainingStock:   result.RemainingStock,
		RestockTriggered: result.RestockTriggered,
	})
}

// ManualRestockHandler godoc
// @Summary Manually restock a product
// @Description Adds the computed restock amount regardless of current stock level
// @Tags inventory
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} RestockResponse
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /restock/{id} [post]
func ManualRestockHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := svc.ManualRestock(id)
	if err != nil {
		if errors.Is(err, inventory.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not restock product", http.StatusInternalServerError)
		return
	}

	if cache != nil {
		cache.Invalidate(id)
	}

	writeJSON(w, http.StatusOK, RestockResponse{
		Message:         "Manual restock completed",
		ProductID:       id,
		StockBefore:     result.StockBefore,
		StockAfter:      result.StockAfter,
		RestockQuantity: result.RestockQuantity,
	})
}
