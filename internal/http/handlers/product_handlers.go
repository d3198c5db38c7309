package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pbarbosa/restock-tracker/internal/inventory"
	"github.com/pbarbosa/restock-tracker/internal/models"
)

// AddProductHandler godoc
// @Summary Add a new product
// @Description Adds a product to the inventory, applying the creation-time business rules
// @Tags products
// @Accept json
// @Produce json
// @Param product body ProductRequest true "Product to add"
// @Success 201 {object} ProductResponse
// @Failure 400 {array} FieldError
// @Failure 500 {string} string "Internal error"
// @Router /products [post]
func AddProductHandler(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateProduct(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	product := models.Product{
		ProductID:       req.ProductID,
		Name:            req.Name,
		StockQuantity:   req.StockQuantity,
		MinThreshold:    req.MinThreshold,
		RestockQuantity: req.RestockQuantity,
		Priority:        models.Priority(req.Priority),
	}

	created, err := svc.AddProduct(product)
	if err != nil {
		if errors.Is(err, inventory.ErrProductAlreadyExists) {
			http.Error(w, "product already exists", http.StatusBadRequest)
			return
		}
		http.Error(w, "could not add product", http.StatusInternalServerError)
		return
	}

	if cache != nil {
		cache.Invalidate(created.ProductID)
	}

	writeJSON(w, http.StatusCreated, ProductResponse{
		Message: "Product added successfully",
		Product: created,
	})
}
