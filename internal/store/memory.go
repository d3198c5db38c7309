package store

import "github.com/pbarbosa/restock-tracker/internal/models"

// MemoryStore is an in-memory implementation of Store, used in tests and
// when running without a data file.
type MemoryStore struct {
	products map[string]models.Product
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{products: map[string]models.Product{}}
}

func (s *MemoryStore) Load() (map[string]models.Product, error) {
	out := make(map[string]models.Product, len(s.products))
	for id, p := range s.products {
		out[id] = p
	}
	return out, nil
}

func (s *MemoryStore) Save(products map[string]models.Product) error {
	s.products = make(map[string]models.Product, len(products))
	for id, p := range products {
		s.products[id] = p
	}
	return nil
}

// Clear removes every stored product.
func (s *MemoryStore) Clear() {
	s.products = map[string]models.Product{}
}
