package repositories

import (
	"fmt"
	"sort"
	"sync"

	"catalog/internal/models"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
// It mirrors the GORM implementation's contract, including identity
// assignment, so tests and local runs can skip the database.
type MockProductRepository struct {
	products map[int]models.Product
	nextID   int
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[int]models.Product),
		nextID:   1,
	}
}

// All returns every product, ordered by ID.
func (r *MockProductRepository) All() ([]models.Product, error) {
	return r.Search(ProductFilter{})
}

// Find returns a product by its ID.
func (r *MockProductRepository) Find(id int) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, fmt.Errorf("product with ID %d: %w", id, models.ErrNotFound)
	}
	return &product, nil
}

// FindByName returns products with an exact name match.
func (r *MockProductRepository) FindByName(name string) ([]models.Product, error) {
	return r.Search(ProductFilter{Name: &name})
}

// FindByCategory returns products with an exact category match.
func (r *MockProductRepository) FindByCategory(category models.Category) ([]models.Product, error) {
	return r.Search(ProductFilter{Category: &category})
}

// FindByAvailability returns products with an exact availability match.
func (r *MockProductRepository) FindByAvailability(available bool) ([]models.Product, error) {
	return r.Search(ProductFilter{Available: &available})
}

// Search returns products matching every criterion set on the filter.
func (r *MockProductRepository) Search(filter ProductFilter) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matches := []models.Product{}
	for _, p := range r.products {
		if filter.Name != nil && p.Name != *filter.Name {
			continue
		}
		if filter.Category != nil && p.Category != *filter.Category {
			continue
		}
		if filter.Available != nil && p.Available != *filter.Available {
			continue
		}
		matches = append(matches, p)
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].ID < matches[j].ID })
	return matches, nil
}

// Create adds a new product and assigns it a fresh identity.
func (r *MockProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	product.ID = r.nextID
	r.nextID++
	r.products[product.ID] = *product
	return nil
}

// Update modifies an existing product.
func (r *MockProductRepository) Update(product *models.Product) error {
	if product.ID == 0 {
		return models.NewDataValidationError("Update called with empty ID field")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[product.ID]; !ok {
		return fmt.Errorf("product with ID %d: %w", product.ID, models.ErrNotFound)
	}
	r.products[product.ID] = *product
	return nil
}

// Delete removes a product by its ID.
func (r *MockProductRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return fmt.Errorf("product with ID %d: %w", id, models.ErrNotFound)
	}
	delete(r.products, id)
	return nil
}
