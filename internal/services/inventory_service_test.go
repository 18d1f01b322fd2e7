package services_test

import (
	"fmt"
	"testing"

	"gamestore/internal/models"
	"gamestore/internal/repositories"
	"gamestore/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockInventoryRepository is a mock implementation of repositories.InventoryRepository
type MockInventoryRepository struct {
	mock.Mock
}

func (m *MockInventoryRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockInventoryRepository) FindAll(filter repositories.ProductFilter) ([]models.Product, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockInventoryRepository) FindByID(id string) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockInventoryRepository) UpdateByID(id string, patch map[string]any) (*models.Product, error) {
	args := m.Called(id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockInventoryRepository) Deactivate(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

const testProductID = "507f1f77bcf86cd799439011"

func TestInventoryService_CreateProduct(t *testing.T) {
	mockRepo := new(MockInventoryRepository)
	service := services.NewInventoryService(mockRepo, nil)

	var persisted *models.Product
	mockRepo.On("Create", mock.AnythingOfType("*models.Product")).
		Run(func(args mock.Arguments) {
			persisted = args.Get(0).(*models.Product)
		}).
		Return(nil).Once()

	product, err := service.CreateProduct(map[string]any{
		"name":  "  PS5  ",
		"price": "499.99",
		"stock": float64(10),
		"type":  "bogus",
	})

	assert.NoError(t, err)
	assert.Same(t, persisted, product)
	assert.Equal(t, "PS5", product.Name)
	assert.Equal(t, 499.99, product.Price)
	assert.Equal(t, 10, product.Stock)
	assert.Equal(t, models.TypeConsoles, product.Type)
	assert.Equal(t, models.PlaceholderImageURL, product.ImageURL)
	assert.True(t, product.IsActive)
	mockRepo.AssertExpectations(t)
}

func TestInventoryService_CreateProduct_ValidationFailure(t *testing.T) {
	mockRepo := new(MockInventoryRepository)
	service := services.NewInventoryService(mockRepo, nil)

	product, err := service.CreateProduct(map[string]any{
		"name":  "Test",
		"price": "invalid",
		"stock": float64(10),
	})

	assert.Nil(t, product)
	var validationErr *services.ValidationError
	if assert.ErrorAs(t, err, &validationErr) {
		assert.Equal(t, []string{"price is required and must be a valid number"}, validationErr.Messages)
	}
	// No persistence is attempted on known-bad input.
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestInventoryService_CreateProduct_Duplicate(t *testing.T) {
	mockRepo := new(MockInventoryRepository)
	service := services.NewInventoryService(mockRepo, nil)

	mockRepo.On("Create", mock.AnythingOfType("*models.Product")).
		Return(fmt.Errorf("product %q: %w", "PS5", repositories.ErrDuplicateKey)).Once()

	product, err := service.CreateProduct(map[string]any{
		"name":  "PS5",
		"price": 499.99,
		"stock": float64(10),
	})

	assert.Nil(t, product)
	assert.ErrorIs(t, err, repositories.ErrDuplicateKey)
	mockRepo.AssertExpectations(t)
}

func TestInventoryService_GetAllProducts(t *testing.T) {
	mockRepo := new(MockInventoryRepository)
	service := services.NewInventoryService(mockRepo, nil)

	minPrice, maxPrice := 50.0, 100.0
	expectedFilter := repositories.ProductFilter{
		Type:     models.TypeAccessories,
		MinPrice: &minPrice,
		MaxPrice: &maxPrice,
		InStock:  true,
	}
	expected := []models.Product{{ID: testProductID, Name: "Headset"}}
	mockRepo.On("FindAll", expectedFilter).Return(expected, nil).Once()

	products, err := service.GetAllProducts(map[string]string{
		"type":     "accessories",
		"minPrice": "50",
		"maxPrice": "100",
		"inStock":  "true",
	})

	assert.NoError(t, err)
	assert.Equal(t, expected, products)
	mockRepo.AssertExpectations(t)
}

func TestInventoryService_GetProductByID(t *testing.T) {
	mockRepo := new(MockInventoryRepository)
	service := services.NewInventoryService(mockRepo, nil)

	// Malformed id: eleven hex characters, rejected before any storage call.
	product, err := service.GetProductByID("12345abcdef")
	assert.Nil(t, product)
	assert.ErrorIs(t, err, services.ErrInvalidID)
	mockRepo.AssertNotCalled(t, "FindByID", mock.Anything)

	expected := &models.Product{ID: testProductID, Name: "PS5", IsActive: true}
	mockRepo.On("FindByID", testProductID).Return(expected, nil).Once()
	product, err = service.GetProductByID(testProductID)
	assert.NoError(t, err)
	assert.Equal(t, expected, product)

	mockRepo.On("FindByID", "507f1f77bcf86cd799439099").
		Return(nil, fmt.Errorf("product: %w", repositories.ErrNotFound)).Once()
	product, err = service.GetProductByID("507f1f77bcf86cd799439099")
	assert.Nil(t, product)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	mockRepo.AssertExpectations(t)
}

func TestInventoryService_UpdateProduct(t *testing.T) {
	mockRepo := new(MockInventoryRepository)
	service := services.NewInventoryService(mockRepo, nil)

	expectedPatch := map[string]any{
		"name":  "PS5 Slim",
		"price": 449.99,
		"genre": "Action",
	}
	updated := &models.Product{ID: testProductID, Name: "PS5 Slim", Price: 449.99}
	mockRepo.On("UpdateByID", testProductID, expectedPatch).Return(updated, nil).Once()

	product, err := service.UpdateProduct(testProductID, map[string]any{
		"name":    " PS5 Slim ",
		"price":   "449.99",
		"genre":   "Action",
		"unknown": "dropped",
	})

	assert.NoError(t, err)
	assert.Equal(t, updated, product)
	mockRepo.AssertExpectations(t)
}

func TestInventoryService_UpdateProduct_SchemaViolations(t *testing.T) {
	mockRepo := new(MockInventoryRepository)
	service := services.NewInventoryService(mockRepo, nil)

	product, err := service.UpdateProduct(testProductID, map[string]any{
		"price":  float64(-5),
		"stock":  "many",
		"type":   "vehicles",
		"rating": float64(9),
	})

	assert.Nil(t, product)
	var schemaErr *services.SchemaError
	if assert.ErrorAs(t, err, &schemaErr) {
		assert.Equal(t, map[string]string{
			"price":  "price cannot be negative",
			"stock":  "stock must be a valid number",
			"type":   "type must be one of: consoles, accessories, games",
			"rating": "rating must be a number between 0 and 5",
		}, schemaErr.Fields)
	}
	mockRepo.AssertNotCalled(t, "UpdateByID", mock.Anything, mock.Anything)
}

func TestInventoryService_UpdateProduct_EmptyPatch(t *testing.T) {
	mockRepo := new(MockInventoryRepository)
	service := services.NewInventoryService(mockRepo, nil)

	current := &models.Product{ID: testProductID, Name: "PS5"}
	mockRepo.On("FindByID", testProductID).Return(current, nil).Once()

	product, err := service.UpdateProduct(testProductID, map[string]any{})
	assert.NoError(t, err)
	assert.Equal(t, current, product)
	mockRepo.AssertExpectations(t)
}

func TestInventoryService_DeleteProduct(t *testing.T) {
	mockRepo := new(MockInventoryRepository)
	service := services.NewInventoryService(mockRepo, nil)

	err := service.DeleteProduct("not-an-id")
	assert.ErrorIs(t, err, services.ErrInvalidID)
	mockRepo.AssertNotCalled(t, "Deactivate", mock.Anything)

	mockRepo.On("Deactivate", testProductID).Return(nil).Once()
	assert.NoError(t, service.DeleteProduct(testProductID))

	mockRepo.On("Deactivate", "507f1f77bcf86cd799439099").
		Return(fmt.Errorf("product: %w", repositories.ErrNotFound)).Once()
	assert.ErrorIs(t, service.DeleteProduct("507f1f77bcf86cd799439099"), repositories.ErrNotFound)
	mockRepo.AssertExpectations(t)
}
