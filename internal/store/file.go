package store

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pbarbosa/restock-tracker/internal/models"
)

// FileStore persists the product map as a pretty-printed JSON file keyed by
// product ID. A missing file loads as an empty map.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore backed by the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load() (map[string]models.Product, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]models.Product{}, nil
		}
		return nil, fmt.Errorf("%w: reading %s: %v", ErrPersistence, s.path, err)
	}

	products := map[string]models.Product{}
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %v", ErrPersistence, s.path, err)
	}
	return products, nil
}

func (s *FileStore) Save(products map[string]models.Product) error {
	data, err := json.MarshalIndent(products, "", "    ")
	if err != nil {
		return fmt.Errorf("%w: encoding products: %v", ErrPersistence, err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("%w: writing %s: %v", ErrPersistence, s.path, err)
	}
	return nil
}
