package repositories

import (
	"catalog/internal/models"
)

// ProductFilter holds optional exact-match criteria for listing products.
// Nil fields are not applied; set fields combine with AND semantics.
type ProductFilter struct {
	Name      *string
	Category  *models.Category
	Available *bool
}

// ProductRepository defines the interface for product data access.
//
// Lookups that miss return an error wrapping models.ErrNotFound. Shape
// problems (updating a product that was never persisted) are reported as
// *models.DataValidationError.
type ProductRepository interface {
	All() ([]models.Product, error)
	Find(id int) (*models.Product, error)
	FindByName(name string) ([]models.Product, error)
	FindByCategory(category models.Category) ([]models.Product, error)
	FindByAvailability(available bool) ([]models.Product, error)
	Search(filter ProductFilter) ([]models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id int) error
}
