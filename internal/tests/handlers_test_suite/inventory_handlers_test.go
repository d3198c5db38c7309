package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	api "github.com/pbarbosa/restock-tracker/internal/http"
	handler "github.com/pbarbosa/restock-tracker/internal/http/handlers"
	"github.com/pbarbosa/restock-tracker/internal/inventory"
	"github.com/pbarbosa/restock-tracker/internal/models"
)

func TestGetInventoryStatusHandler(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	mustCreateProduct(r, handler.ProductRequest{
		ProductID:       "p1",
		Name:            "Widget",
		StockQuantity:   5,
		MinThreshold:    10,
		RestockQuantity: 20,
		Priority:        "medium",
	})

	w := getInventoryStatus(r, "p1")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp handler.InventoryResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Status != models.StatusBelowThreshold {
		t.Errorf("expected below_threshold, got %q", resp.Status)
	}
	if resp.StockQuantity != 5 {
		t.Errorf("expected stock 5, got %d", resp.StockQuantity)
	}
	if resp.Priority != models.PriorityMedium {
		t.Errorf("expected medium priority, got %q", resp.Priority)
	}
}

func TestGetInventoryStatusHandler_NotFound(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	w := getInventoryStatus(r, "missing")
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found, got %d", w.Code)
	}
}

func TestGetAllInventoryHandler(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	// Empty inventory is a valid, empty list.
	req := httptest.NewRequest(http.MethodGet, "/inventory", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var resp []handler.InventoryResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(resp) != 0 {
		t.Fatalf("expected empty list, got %d entries", len(resp))
	}

	mustCreateProduct(r, handler.ProductRequest{
		ProductID: "p1", Name: "A", StockQuantity: 0, MinThreshold: 5, RestockQuantity: 10, Priority: "low",
	})
	mustCreateProduct(r, handler.ProductRequest{
		ProductID: "p2", Name: "B", StockQuantity: 9, MinThreshold: 5, RestockQuantity: 10, Priority: "low",
	})

	req = httptest.NewRequest(http.MethodGet, "/inventory", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	resp = nil
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(resp))
	}

	statuses := map[string]models.Status{}
	for _, s := range resp {
		statuses[s.ProductID] = s.Status
	}
	if statuses["p1"] != models.StatusOutOfStock {
		t.Errorf("expected p1 out_of_stock, got %q", statuses["p1"])
	}
	if statuses["p2"] != models.StatusOK {
		t.Errorf("expected p2 ok, got %q", statuses["p2"])
	}
}

func TestPurchaseHandler(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	mustCreateProduct(r, handler.ProductRequest{
		ProductID:       "p1",
		Name:            "Widget",
		StockQuantity:   100,
		MinThreshold:    10,
		RestockQuantity: 20,
		Priority:        "medium",
	})

	w := purchaseProduct(r, "p1", 30)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d: %s", w.Code, w.Body.String())
	}

	var resp handler.PurchaseResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.RemainingStock != 70 {
		t.Errorf("expected remaining stock 70, got %d", resp.RemainingStock)
	}
	if resp.RestockTriggered {
		t.Error("expected no restock well above threshold")
	}
}

func TestPurchaseHandler_TriggersRestockAtZero(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	mustCreateProduct(r, handler.ProductRequest{
		ProductID:       "p1",
		Name:            "Widget",
		StockQuantity:   5,
		MinThreshold:    10,
		RestockQuantity: 60,
		Priority:        "low",
	})

	// restock_quantity 60 puts the product in high_volume, so draining it
	// to zero restocks int(60 * 1.1) = 66 units.
	w := purchaseProduct(r, "p1", 5)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d: %s", w.Code, w.Body.String())
	}

	var resp handler.PurchaseResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if !resp.RestockTriggered {
		t.Fatal("expected restock_triggered true")
	}
	if resp.RemainingStock != 66 {
		t.Errorf("expected remaining stock 66, got %d", resp.RemainingStock)
	}
}

func TestPurchaseHandler_InsufficientStock(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	mustCreateProduct(r, handler.ProductRequest{
		ProductID:       "p1",
		Name:            "Widget",
		StockQuantity:   5,
		MinThreshold:    2,
		RestockQuantity: 10,
		Priority:        "low",
	})

	w := purchaseProduct(r, "p1", 8)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 Bad Request, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Available: 5") || !strings.Contains(body, "Requested: 8") {
		t.Errorf("expected available/requested amounts in message, got %q", body)
	}

	// Stock must be untouched.
	sw := getInventoryStatus(r, "p1")
	var status handler.InventoryResponse
	if err := json.NewDecoder(sw.Body).Decode(&status); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if status.StockQuantity != 5 {
		t.Errorf("expected stock unchanged at 5, got %d", status.StockQuantity)
	}
}

func TestPurchaseHandler_InvalidQuantity(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	mustCreateProduct(r, handler.ProductRequest{
		ProductID: "p1", Name: "Widget", StockQuantity: 5, MinThreshold: 2, RestockQuantity: 10, Priority: "low",
	})

	for _, qty := range []int{0, -1} {
		w := purchaseProduct(r, "p1", qty)
		if w.Code != http.StatusBadRequest {
			t.Errorf("quantity %d: expected 400 Bad Request, got %d", qty, w.Code)
		}
	}
}

func TestPurchaseHandler_NotFound(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	w := purchaseProduct(r, "missing", 1)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found, got %d", w.Code)
	}
}

func TestManualRestockHandler(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	mustCreateProduct(r, handler.ProductRequest{
		ProductID:       "p1",
		Name:            "Widget",
		StockQuantity:   500,
		MinThreshold:    10,
		RestockQuantity: 100,
		Priority:        "high",
	})

	// Manual restock ignores the current stock level entirely.
	w := restockProduct(r, "p1")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d: %s", w.Code, w.Body.String())
	}

	var resp handler.RestockResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.StockBefore != 500 {
		t.Errorf("expected stock before 500, got %d", resp.StockBefore)
	}
	if resp.RestockQuantity != 120 {
		t.Errorf("expected restock quantity 120, got %d", resp.RestockQuantity)
	}
	if resp.StockAfter != 620 {
		t.Errorf("expected stock after 620, got %d", resp.StockAfter)
	}
}

func TestManualRestockHandler_NotFound(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	w := restockProduct(r, "missing")
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found, got %d", w.Code)
	}
}

func TestGetDashboardMetricsHandler(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	mustCreateProduct(r, handler.ProductRequest{
		ProductID: "p1", Name: "A", StockQuantity: 0, MinThreshold: 5, RestockQuantity: 10, Priority: "low",
	})
	mustCreateProduct(r, handler.ProductRequest{
		ProductID: "p2", Name: "B", StockQuantity: 3, MinThreshold: 5, RestockQuantity: 10, Priority: "low",
	})
	mustCreateProduct(r, handler.ProductRequest{
		ProductID: "p3", Name: "C", StockQuantity: 20, MinThreshold: 5, RestockQuantity: 10, Priority: "low",
	})

	req := httptest.NewRequest(http.MethodGet, "/metrics/dashboard", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var m inventory.Metrics
	if err := json.NewDecoder(w.Body).Decode(&m); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if m.TotalProducts != 3 {
		t.Errorf("expected 3 products, got %d", m.TotalProducts)
	}
	if m.TotalStock != 23 {
		t.Errorf("expected total stock 23, got %d", m.TotalStock)
	}
	if m.OutOfStockCount != 1 {
		t.Errorf("expected 1 out of stock, got %d", m.OutOfStockCount)
	}
	if m.BelowThresholdCount != 1 {
		t.Errorf("expected 1 below threshold, got %d", m.BelowThresholdCount)
	}
}

func TestRootHandler(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var info handler.ServiceInfo
	if err := json.NewDecoder(w.Body).Decode(&info); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(info.Endpoints) == 0 {
		t.Error("expected endpoint catalog in root response")
	}
}

func TestScenario_MediumPriorityHalfThreshold(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	mustCreateProduct(r, handler.ProductRequest{
		ProductID:       "p1",
		Name:            "Widget",
		StockQuantity:   5,
		MinThreshold:    10,
		RestockQuantity: 20,
		Priority:        "medium",
	})

	sw := getInventoryStatus(r, "p1")
	var status handler.InventoryResponse
	if err := json.NewDecoder(sw.Body).Decode(&status); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if status.Status != models.StatusBelowThreshold {
		t.Fatalf("expected below_threshold, got %q", status.Status)
	}

	w := restockProduct(r, "p1")
	var resp handler.RestockResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.StockAfter != 25 {
		t.Errorf("expected stock 25 after manual restock, got %d", resp.StockAfter)
	}
}
