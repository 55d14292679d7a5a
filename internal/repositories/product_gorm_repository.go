package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"catalog/internal/models"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// All retrieves every product from the database.
func (r *GORMProductRepository) All() ([]models.Product, error) {
	return r.Search(ProductFilter{})
}

// Find retrieves a single product by its ID.
func (r *GORMProductRepository) Find(id int) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product with ID %d: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get product by ID %d: %w", id, err)
	}
	return &product, nil
}

// FindByName retrieves products with an exact name match.
func (r *GORMProductRepository) FindByName(name string) ([]models.Product, error) {
	return r.Search(ProductFilter{Name: &name})
}

// FindByCategory retrieves products with an exact category match. The zero
// value searches CategoryUnknown.
func (r *GORMProductRepository) FindByCategory(category models.Category) ([]models.Product, error) {
	return r.Search(ProductFilter{Category: &category})
}

// FindByAvailability retrieves products with an exact availability match.
func (r *GORMProductRepository) FindByAvailability(available bool) ([]models.Product, error) {
	return r.Search(ProductFilter{Available: &available})
}

// Search retrieves products matching every criterion set on the filter.
func (r *GORMProductRepository) Search(filter ProductFilter) ([]models.Product, error) {
	query := r.db
	if filter.Name != nil {
		query = query.Where("name = ?", *filter.Name)
	}
	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}
	if filter.Available != nil {
		query = query.Where("available = ?", *filter.Available)
	}

	products := []models.Product{}
	if err := query.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	return products, nil
}

// Create inserts a new product. Any ID set on the entity is discarded; the
// database assigns the identity and the entity's ID is updated in place.
func (r *GORMProductRepository) Create(product *models.Product) error {
	product.ID = 0
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update persists the entity's current field values to its existing row.
func (r *GORMProductRepository) Update(product *models.Product) error {
	if product.ID == 0 {
		return models.NewDataValidationError("Update called with empty ID field")
	}

	var existing models.Product
	if err := r.db.First(&existing, "id = ?", product.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("product with ID %d: %w", product.ID, models.ErrNotFound)
		}
		return fmt.Errorf("failed to update product %d: %w", product.ID, err)
	}

	// Save writes all fields, including zero values such as available=false.
	if err := r.db.Save(product).Error; err != nil {
		return fmt.Errorf("failed to update product %d: %w", product.ID, err)
	}
	return nil
}

// Delete removes the product matching the ID from the database.
func (r *GORMProductRepository) Delete(id int) error {
	res := r.db.Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete product %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product with ID %d: %w", id, models.ErrNotFound)
	}
	return nil
}
