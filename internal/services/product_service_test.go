package services_test

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"catalog/internal/models"
	"catalog/internal/repositories"
	"catalog/internal/services"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) All() ([]models.Product, error) {
	args := m.Called()
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) Find(id int) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) FindByName(name string) ([]models.Product, error) {
	args := m.Called(name)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) FindByCategory(category models.Category) ([]models.Product, error) {
	args := m.Called(category)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) FindByAvailability(available bool) ([]models.Product, error) {
	args := m.Called(available)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) Search(filter repositories.ProductFilter) ([]models.Product, error) {
	args := m.Called(filter)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockEventPublisher is a mock implementation of services.EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishProductEvent(event string, payload map[string]interface{}) error {
	args := m.Called(event, payload)
	return args.Error(0)
}

func TestProductService_ListProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	expectedProducts := []models.Product{
		{ID: 1, Name: "Fedora", Price: decimal.RequireFromString("12.50"), Category: models.CategoryCloths},
		{ID: 2, Name: "Hammer", Price: decimal.RequireFromString("25.00"), Category: models.CategoryTools},
	}

	mockRepo.On("Search", repositories.ProductFilter{}).Return(expectedProducts, nil).Once()

	products, err := service.ListProducts(repositories.ProductFilter{})

	assert.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, expectedProducts, products)
	mockRepo.AssertExpectations(t)
}

func TestProductService_ListProductsFiltered(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	name := "Fedora"
	filter := repositories.ProductFilter{Name: &name}
	expected := []models.Product{{ID: 1, Name: "Fedora"}}

	mockRepo.On("Search", filter).Return(expected, nil).Once()

	products, err := service.ListProducts(filter)
	assert.NoError(t, err)
	assert.Equal(t, expected, products)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	expectedProduct := &models.Product{ID: 1, Name: "Fedora"}

	// Test successful retrieval
	mockRepo.On("Find", 1).Return(expectedProduct, nil).Once()
	product, err := service.GetProduct(1)
	assert.NoError(t, err)
	assert.Equal(t, expectedProduct, product)
	mockRepo.AssertExpectations(t)

	// Test product not found
	mockRepo.On("Find", 99).Return(nil, fmt.Errorf("product with ID 99: %w", models.ErrNotFound)).Once()
	product, err = service.GetProduct(99)
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.Nil(t, product)
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockPublisher := new(MockEventPublisher)
	service := services.NewProductService(mockRepo, mockPublisher)

	newProduct := &models.Product{Name: "New Product", Price: decimal.RequireFromString("50.00")}

	mockRepo.On("Create", newProduct).Return(nil).Once()
	mockPublisher.On("PublishProductEvent", "product.created", mock.Anything).Return(nil).Once()

	err := service.CreateProduct(newProduct)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}

func TestProductService_CreateProductRepoError(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockPublisher := new(MockEventPublisher)
	service := services.NewProductService(mockRepo, mockPublisher)

	newProduct := &models.Product{Name: "New Product"}

	// No event is published when the repository fails.
	mockRepo.On("Create", newProduct).Return(fmt.Errorf("database error")).Once()

	err := service.CreateProduct(newProduct)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database error")
	mockRepo.AssertExpectations(t)
	mockPublisher.AssertNotCalled(t, "PublishProductEvent", mock.Anything, mock.Anything)
}

func TestProductService_CreateProductPublishFailureIsSwallowed(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockPublisher := new(MockEventPublisher)
	service := services.NewProductService(mockRepo, mockPublisher)

	newProduct := &models.Product{Name: "New Product"}

	mockRepo.On("Create", newProduct).Return(nil).Once()
	mockPublisher.On("PublishProductEvent", "product.created", mock.Anything).
		Return(fmt.Errorf("broker unavailable")).Once()

	// Publishing is best effort; the create still succeeds.
	err := service.CreateProduct(newProduct)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}

func TestProductService_UpdateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockPublisher := new(MockEventPublisher)
	service := services.NewProductService(mockRepo, mockPublisher)

	updatedProduct := &models.Product{ID: 1, Name: "Updated Name"}

	mockRepo.On("Update", updatedProduct).Return(nil).Once()
	mockPublisher.On("PublishProductEvent", "product.updated", mock.Anything).Return(nil).Once()

	err := service.UpdateProduct(updatedProduct)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)

	// Test update failure (e.g., product not found in repo)
	missing := &models.Product{ID: 99, Name: "NonExistent"}
	mockRepo.On("Update", missing).Return(fmt.Errorf("product with ID 99: %w", models.ErrNotFound)).Once()
	err = service.UpdateProduct(missing)
	assert.ErrorIs(t, err, models.ErrNotFound)
	mockRepo.AssertExpectations(t)
}

func TestProductService_DeleteProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockPublisher := new(MockEventPublisher)
	service := services.NewProductService(mockRepo, mockPublisher)

	mockRepo.On("Delete", 1).Return(nil).Once()
	mockPublisher.On("PublishProductEvent", "product.deleted", mock.Anything).Return(nil).Once()

	err := service.DeleteProduct(1)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)

	// Test deletion failure (e.g., product not found)
	mockRepo.On("Delete", 99).Return(fmt.Errorf("product with ID 99: %w", models.ErrNotFound)).Once()
	err = service.DeleteProduct(99)
	assert.ErrorIs(t, err, models.ErrNotFound)
	mockRepo.AssertExpectations(t)
}
