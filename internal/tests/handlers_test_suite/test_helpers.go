package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/pbarbosa/restock-tracker/internal/audit"
	handler "github.com/pbarbosa/restock-tracker/internal/http/handlers"
	rl "github.com/pbarbosa/restock-tracker/internal/http/rate_limiter"
	"github.com/pbarbosa/restock-tracker/internal/inventory"
	"github.com/pbarbosa/restock-tracker/internal/store"
)

var productStore *store.MemoryStore

func init() {
	// Generous limits so the suite never trips the rate limiter.
	rl.Configure(10000, 10000)
	setupTestService()
}

func setupTestService() {
	productStore = store.NewMemoryStore()
	handler.SetService(inventory.NewService(productStore, audit.Nop()))
}

func clearAllProducts() {
	productStore.Clear()
	rl.CleanupAllVisitors()
}

func createProduct(r http.Handler, p handler.ProductRequest) *httptest.ResponseRecorder {
	body, _ := json.Marshal(p)
	req := httptest.NewRequest(http.MethodPost, "/products", bytes.NewReader(body))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func purchaseProduct(r http.Handler, productID string, quantity int) *httptest.ResponseRecorder {
	body, _ := json.Marshal(handler.PurchaseRequest{Quantity: quantity})
	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/purchase/%s", productID), bytes.NewReader(body))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func restockProduct(r http.Handler, productID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/restock/%s", productID), nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func getInventoryStatus(r http.Handler, productID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/inventory/%s", productID), nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func mustCreateProduct(r http.Handler, p handler.ProductRequest) {
	w := createProduct(r, p)
	if w.Code != http.StatusCreated {
		panic(fmt.Sprintf("product setup failed with status %d: %s", w.Code, w.Body.String()))
	}
}
