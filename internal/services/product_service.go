package services

import (
	"log"

	"catalog/internal/models"
	"catalog/internal/repositories"
)

// EventPublisher publishes product lifecycle events to a message broker.
type EventPublisher interface {
	PublishProductEvent(event string, payload map[string]interface{}) error
}

// ProductService handles business logic related to products.
type ProductService struct {
	repo      repositories.ProductRepository
	publisher EventPublisher
}

// NewProductService creates a new ProductService. The publisher may be nil,
// in which case lifecycle events are not emitted.
func NewProductService(repo repositories.ProductRepository, publisher EventPublisher) *ProductService {
	return &ProductService{
		repo:      repo,
		publisher: publisher,
	}
}

// ListProducts retrieves products matching the filter. An empty filter
// returns every product.
func (s *ProductService) ListProducts(filter repositories.ProductFilter) ([]models.Product, error) {
	return s.repo.Search(filter)
}

// GetProduct retrieves a single product by its ID.
func (s *ProductService) GetProduct(id int) (*models.Product, error) {
	return s.repo.Find(id)
}

// CreateProduct persists a new product and emits a "created" event.
func (s *ProductService) CreateProduct(product *models.Product) error {
	if err := s.repo.Create(product); err != nil {
		return err
	}
	s.publish("product.created", product)
	return nil
}

// UpdateProduct persists changes to an existing product and emits an
// "updated" event.
func (s *ProductService) UpdateProduct(product *models.Product) error {
	if err := s.repo.Update(product); err != nil {
		return err
	}
	s.publish("product.updated", product)
	return nil
}

// DeleteProduct deletes a product by its ID and emits a "deleted" event.
func (s *ProductService) DeleteProduct(id int) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.publish("product.deleted", &models.Product{ID: id})
	return nil
}

// publish emits a lifecycle event. Publishing is best effort: failures are
// logged and never surfaced to the caller.
func (s *ProductService) publish(event string, product *models.Product) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishProductEvent(event, product.Serialize()); err != nil {
		log.Printf("Failed to publish %s event for product %d: %v", event, product.ID, err)
	}
}
