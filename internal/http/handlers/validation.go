package handlers

import (
	"strings"

	"github.com/pbarbosa/restock-tracker/internal/models"
)

type FieldError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateProduct(p ProductRequest) []FieldError {
	errs := []FieldError{}
	if strings.TrimSpace(p.ProductID) == "" {
		errs = append(errs, FieldError{Field: "ProductID", Description: "Product ID is required"})
	}
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, FieldError{Field: "Name", Description: "Name is required"})
	}
	if p.StockQuantity < 0 {
		errs = append(errs, FieldError{Field: "StockQuantity", Description: "Stock quantity cannot be negative"})
	}
	if p.MinThreshold < 0 {
		errs = append(errs, FieldError{Field: "MinThreshold", Description: "Min threshold cannot be negative"})
	}
	if p.RestockQuantity < 0 {
		errs = append(errs, FieldError{Field: "RestockQuantity", Description: "Restock quantity cannot be negative"})
	}
	if !models.Priority(p.Priority).Valid() {
		errs = append(errs, FieldError{Field: "Priority", Description: "Priority must be high, medium or low"})
	}
	return errs
}

func validatePurchase(p PurchaseRequest) []FieldError {
	errs := []FieldError{}
	if p.Quantity <= 0 {
		errs = append(errs, FieldError{Field: "Quantity", Description: "Quantity must be positive"})
	}
	return errs
}
