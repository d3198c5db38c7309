package handlers

import (
	"github.com/pbarbosa/restock-tracker/internal/inventory"
	"github.com/pbarbosa/restock-tracker/internal/statuscache"
)

var (
	svc   *inventory.Service
	cache *statuscache.StatusCache
)

// SetService injects the inventory service used by all handlers.
func SetService(s *inventory.Service) {
	svc = s
}

// SetStatusCache injects the optional status cache. Handlers tolerate nil.
func SetStatusCache(c *statuscache.StatusCache) {
	cache = c
}
