package handlers

import "net/http"

// RootHandler godoc
// @Summary Service information
// @Tags info
// @Produce json
// @Success 200 {object} ServiceInfo
// @Router / [get]
func RootHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ServiceInfo{
		Message: "Mini Inventory Management System",
		Version: "1.0.0",
		Endpoints: map[string]string{
			"POST /products":         "Add new product",
			"GET /inventory/{id}":    "Get product inventory status",
			"GET /inventory":         "Get all products inventory status",
			"POST /purchase/{id}":    "Purchase product",
			"POST /restock/{id}":     "Manual restock product",
			"GET /metrics/dashboard": "Inventory summary metrics",
		},
	})
}

// HealthHandler godoc
// @Summary Liveness probe
// @Tags info
// @Produce json
// @Success 200 {object} map[string]string
// @Router /healthz [get]
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
