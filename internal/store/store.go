package store

import (
	"errors"

	"github.com/pbarbosa/restock-tracker/internal/models"
)

// Store loads and persists the full product map. Each service operation
// performs one Load and, on success, at most one Save.
type Store interface {
	Load() (map[string]models.Product, error)
	Save(products map[string]models.Product) error
}

// ErrPersistence is wrapped around any I/O failure while loading or saving.
// A failed Save is fatal to the operation and is never retried.
var ErrPersistence = errors.New("persistence failure")
