package inventory

import (
	"errors"
	"fmt"

	"github.com/pbarbosa/restock-tracker/internal/audit"
	"github.com/pbarbosa/restock-tracker/internal/models"
	"github.com/pbarbosa/restock-tracker/internal/store"
)

// High-priority products may never carry a threshold below this floor; it is
// enforced silently at creation, not rejected.
const highPriorityMinThreshold = 10

var (
	// ErrProductAlreadyExists is returned when adding a product whose ID is taken.
	ErrProductAlreadyExists = errors.New("product already exists")
	// ErrProductNotFound is returned when the requested product is not stored.
	ErrProductNotFound = errors.New("product not found")
	// ErrInvalidQuantity is returned for non-positive purchase quantities.
	ErrInvalidQuantity = errors.New("quantity must be positive")
)

// InsufficientStockError is returned when a purchase requests more units
// than are available.
type InsufficientStockError struct {
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock: available %d, requested %d", e.Available, e.Requested)
}

// InventoryStatus is the per-product status view.
type InventoryStatus struct {
	ProductID     string
	StockQuantity int
	Status        models.Status
	Priority      models.Priority
}

// PurchaseResult reports the outcome of a purchase.
type PurchaseResult struct {
	RemainingStock   int
	RestockTriggered bool
}

// RestockResult reports the outcome of a manual restock.
type RestockResult struct {
	StockBefore     int
	StockAfter      int
	RestockQuantity int
}

// Service orchestrates inventory operations against a Store. Every mutating
// operation performs one Load and, on success, one Save; a failed Save
// propagates to the caller and is never retried.
type Service struct {
	store store.Store
	audit *audit.Logger
}

// NewService creates a Service. A nil audit logger disables auditing.
func NewService(st store.Store, al *audit.Logger) *Service {
	if al == nil {
		al = audit.Nop()
	}
	return &Service{store: st, audit: al}
}

// AddProduct stores a new product after applying the creation rules: the
// high-priority threshold floor and the automatic category assignment.
// Any caller-supplied category is overwritten.
func (s *Service) AddProduct(p models.Product) (models.Product, error) {
	products, err := s.store.Load()
	if err != nil {
		return models.Product{}, err
	}

	if _, ok := products[p.ProductID]; ok {
		s.audit.Record("ADD_PRODUCT_FAILED", p.ProductID, map[string]any{"reason": "product already exists"})
		return models.Product{}, ErrProductAlreadyExists
	}

	if p.Priority == models.PriorityHigh && p.MinThreshold < highPriorityMinThreshold {
		p.MinThreshold = highPriorityMinThreshold
		s.audit.Record("BUSINESS_RULE_APPLIED", p.ProductID, map[string]any{
			"rule":          "high_priority_min_threshold",
			"new_threshold": highPriorityMinThreshold,
		})
	}

	p.Category = AssignCategory(p.RestockQuantity)

	products[p.ProductID] = p
	if err := s.store.Save(products); err != nil {
		s.audit.Record("ADD_PRODUCT_FAILED", p.ProductID, map[string]any{"reason": err.Error()})
		return models.Product{}, err
	}

	s.audit.Record("ADD_PRODUCT", p.ProductID, map[string]any{
		"name":           p.Name,
		"stock_quantity": p.StockQuantity,
		"priority":       p.Priority,
		"category":       p.Category,
	})
	return p, nil
}

// GetStatus returns the classified status of one product.
func (s *Service) GetStatus(id string) (InventoryStatus, error) {
	products, err := s.store.Load()
	if err != nil {
		return InventoryStatus{}, err
	}

	p, ok := products[id]
	if !ok {
		s.audit.Record("INVENTORY_CHECK_FAILED", id, map[string]any{"reason": "product not found"})
		return InventoryStatus{}, ErrProductNotFound
	}

	status := InventoryStatus{
		ProductID:     p.ProductID,
		StockQuantity: p.StockQuantity,
		Status:        ClassifyStatus(p.StockQuantity, p.MinThreshold),
		Priority:      p.Priority,
	}
	s.audit.Record("INVENTORY_CHECK", id, map[string]any{
		"stock_quantity": p.StockQuantity,
		"status":         status.Status,
	})
	return status, nil
}

// ListStatus returns the status of every stored product. Order is
// unspecified; an empty inventory yields an empty slice.
func (s *Service) ListStatus() ([]InventoryStatus, error) {
	products, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	results := make([]InventoryStatus, 0, len(products))
	for _, p := range products {
		results = append(results, InventoryStatus{
			ProductID:     p.ProductID,
			StockQuantity: p.StockQuantity,
			Status:        ClassifyStatus(p.StockQuantity, p.MinThreshold),
			Priority:      p.Priority,
		})
	}
	s.audit.Record("GET_ALL_INVENTORY", "ALL", map[string]any{"count": len(results)})
	return results, nil
}

// Purchase removes quantity units from a product's stock and then runs the
// automatic restock decision on the result.
func (s *Service) Purchase(id string, quantity int) (PurchaseResult, error) {
	if quantity <= 0 {
		return PurchaseResult{}, ErrInvalidQuantity
	}

	products, err := s.store.Load()
	if err != nil {
		return PurchaseResult{}, err
	}

	p, ok := products[id]
	if !ok {
		s.audit.Record("PURCHASE_FAILED", id, map[string]any{"reason": "product not found"})
		return PurchaseResult{}, ErrProductNotFound
	}

	if quantity > p.StockQuantity {
		s.audit.Record("PURCHASE_FAILED", id, map[string]any{
			"reason":    "insufficient stock",
			"requested": quantity,
			"available": p.StockQuantity,
		})
		return PurchaseResult{}, &InsufficientStockError{Available: p.StockQuantity, Requested: quantity}
	}

	stockBefore := p.StockQuantity
	p.StockQuantity -= quantity
	p, triggered := ApplyRestock(p)

	products[id] = p
	if err := s.store.Save(products); err != nil {
		s.audit.Record("PURCHASE_FAILED", id, map[string]any{"reason": err.Error()})
		return PurchaseResult{}, err
	}

	s.audit.Record("PURCHASE", id, map[string]any{
		"quantity_purchased": quantity,
		"stock_before":       stockBefore,
		"stock_after":        p.StockQuantity,
		"restock_triggered":  triggered,
	})
	return PurchaseResult{RemainingStock: p.StockQuantity, RestockTriggered: triggered}, nil
}

// ManualRestock adds the computed restock amount to a product regardless of
// its current stock level.
func (s *Service) ManualRestock(id string) (RestockResult, error) {
	products, err := s.store.Load()
	if err != nil {
		return RestockResult{}, err
	}

	p, ok := products[id]
	if !ok {
		s.audit.Record("MANUAL_RESTOCK_FAILED", id, map[string]any{"reason": "product not found"})
		return RestockResult{}, ErrProductNotFound
	}

	added := RestockAmount(p.RestockQuantity, p.Priority, p.Category)
	result := RestockResult{
		StockBefore:     p.StockQuantity,
		StockAfter:      p.StockQuantity + added,
		RestockQuantity: added,
	}
	p.StockQuantity = result.StockAfter

	products[id] = p
	if err := s.store.Save(products); err != nil {
		s.audit.Record("MANUAL_RESTOCK_FAILED", id, map[string]any{"reason": err.Error()})
		return RestockResult{}, err
	}

	s.audit.Record("MANUAL_RESTOCK", id, map[string]any{
		"stock_before":     result.StockBefore,
		"stock_after":      result.StockAfter,
		"restock_quantity": result.RestockQuantity,
	})
	return result, nil
}
