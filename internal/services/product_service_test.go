package services_test

import (
	"errors"
	"fmt"
	"testing"

	"catalog/internal/models"
	"catalog/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// MockProductRepo is a mock implementation of repositories.ProductRepository
type MockProductRepo struct {
	mock.Mock
}

func (m *MockProductRepo) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepo) Update(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepo) UpdateWithImages(product *models.Product, imageURLs []string) error {
	args := m.Called(product, imageURLs)
	return args.Error(0)
}

func (m *MockProductRepo) FindByID(id string) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepo) FindByTitleOrSlug(title, slug string) (*models.Product, error) {
	args := m.Called(title, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepo) List(limit, offset int) ([]models.Product, error) {
	args := m.Called(limit, offset)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepo) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockProductRepo) DeleteAll() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

const testUUID = "02de3ed7-1d5f-453d-824b-6aeaa861967f"

func testOwner() *models.User {
	return &models.User{ID: "user-1", Email: "admin@catalog.local", FullName: "Admin User"}
}

func TestProductService_CreateProduct(t *testing.T) {
	mockRepo := new(MockProductRepo)
	service := services.NewProductService(mockRepo, nil)

	input := services.CreateProductInput{
		Title:  "Men's Chill Crew Neck Sweatshirt",
		Price:  75,
		Sizes:  []string{"S", "M"},
		Gender: "men",
		Images: []string{"https://cdn.example.com/1.jpg", "https://cdn.example.com/2.jpg"},
	}

	mockRepo.On("Create", mock.AnythingOfType("*models.Product")).Run(func(args mock.Arguments) {
		p := args.Get(0).(*models.Product)
		p.ID = testUUID
		p.Slug = models.NormalizeSlug(p.Title)
	}).Return(nil).Once()

	created, err := service.CreateProduct(input, testOwner())
	assert.NoError(t, err)
	assert.Equal(t, testUUID, created.ID)
	assert.Equal(t, "mens_chill_crew_neck_sweatshirt", created.Slug)
	assert.Equal(t, []string{"https://cdn.example.com/1.jpg", "https://cdn.example.com/2.jpg"}, created.Images)
	assert.NotNil(t, created.User)
	assert.Equal(t, "user-1", created.User.ID)
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct_Duplicate(t *testing.T) {
	mockRepo := new(MockProductRepo)
	service := services.NewProductService(mockRepo, nil)

	input := services.CreateProductInput{Title: "T-Shirt", Sizes: []string{"M"}, Gender: "men"}
	dbErr := fmt.Errorf("failed to create product: %w", gorm.ErrDuplicatedKey)
	mockRepo.On("Create", mock.AnythingOfType("*models.Product")).Return(dbErr).Once()

	_, err := service.CreateProduct(input, testOwner())
	assert.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrDuplicateKey))
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct_StorageFault(t *testing.T) {
	mockRepo := new(MockProductRepo)
	service := services.NewProductService(mockRepo, nil)

	input := services.CreateProductInput{Title: "T-Shirt", Sizes: []string{"M"}, Gender: "men"}
	mockRepo.On("Create", mock.AnythingOfType("*models.Product")).Return(fmt.Errorf("connection reset")).Once()

	_, err := service.CreateProduct(input, testOwner())
	assert.Error(t, err)
	// Detail must not leak to the caller for non-constraint faults.
	assert.True(t, errors.Is(err, services.ErrUnexpected))
	assert.NotContains(t, err.Error(), "connection reset")
	mockRepo.AssertExpectations(t)
}

func TestProductService_FindProduct_DispatchesByTermShape(t *testing.T) {
	mockRepo := new(MockProductRepo)
	service := services.NewProductService(mockRepo, nil)

	expected := &models.Product{ID: testUUID, Title: "T-Shirt", Slug: "t-shirt"}

	// A UUID term goes through the key lookup.
	mockRepo.On("FindByID", testUUID).Return(expected, nil).Once()
	product, err := service.FindProduct(testUUID)
	assert.NoError(t, err)
	assert.Equal(t, expected, product)

	// Anything else is matched against upper(title) / lower(slug).
	mockRepo.On("FindByTitleOrSlug", "T-SHIRT", "t-shirt").Return(expected, nil).Once()
	product, err = service.FindProduct("T-Shirt")
	assert.NoError(t, err)
	assert.Equal(t, expected, product)

	mockRepo.AssertExpectations(t)
}

func TestProductService_FindProduct_NotFound(t *testing.T) {
	mockRepo := new(MockProductRepo)
	service := services.NewProductService(mockRepo, nil)

	notFound := fmt.Errorf("failed to get product: %w", gorm.ErrRecordNotFound)
	mockRepo.On("FindByTitleOrSlug", "MISSING", "missing").Return(nil, notFound).Once()

	_, err := service.FindProduct("missing")
	assert.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrProductNotFound))
	assert.Contains(t, err.Error(), "missing")
	mockRepo.AssertExpectations(t)
}

func TestProductService_UpdateProduct_PlainPath(t *testing.T) {
	mockRepo := new(MockProductRepo)
	service := services.NewProductService(mockRepo, nil)

	stored := &models.Product{
		ID:    testUUID,
		Title: "T-Shirt",
		Slug:  "t-shirt",
		Images: []models.ProductImage{
			{ID: 1, URL: "https://cdn.example.com/old.jpg", ProductID: testUUID},
		},
	}
	newTitle := "Long Sleeve Tee"

	mockRepo.On("FindByID", testUUID).Return(stored, nil).Twice()
	mockRepo.On("Update", mock.AnythingOfType("*models.Product")).Run(func(args mock.Arguments) {
		p := args.Get(0).(*models.Product)
		assert.Equal(t, newTitle, p.Title)
		// The slug is re-normalized from its stored value, never re-derived
		// from the new title.
		assert.Equal(t, "t-shirt", p.Slug)
	}).Return(nil).Once()

	updated, err := service.UpdateProduct(testUUID, services.UpdateProductInput{Title: &newTitle})
	assert.NoError(t, err)
	assert.Equal(t, []string{"https://cdn.example.com/old.jpg"}, updated.Images)
	mockRepo.AssertExpectations(t)
	mockRepo.AssertNotCalled(t, "UpdateWithImages", mock.Anything, mock.Anything)
}

func TestProductService_UpdateProduct_ImagePathIsTransactional(t *testing.T) {
	mockRepo := new(MockProductRepo)
	service := services.NewProductService(mockRepo, nil)

	stored := &models.Product{ID: testUUID, Title: "T-Shirt", Slug: "t-shirt"}
	newImages := []string{"https://cdn.example.com/new.jpg"}

	mockRepo.On("FindByID", testUUID).Return(stored, nil).Twice()
	mockRepo.On("UpdateWithImages", mock.AnythingOfType("*models.Product"), newImages).Return(nil).Once()

	_, err := service.UpdateProduct(testUUID, services.UpdateProductInput{Images: newImages})
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestProductService_UpdateProduct_NotFound(t *testing.T) {
	mockRepo := new(MockProductRepo)
	service := services.NewProductService(mockRepo, nil)

	notFound := fmt.Errorf("failed to get product: %w", gorm.ErrRecordNotFound)
	mockRepo.On("FindByID", testUUID).Return(nil, notFound).Once()

	_, err := service.UpdateProduct(testUUID, services.UpdateProductInput{})
	assert.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrProductNotFound))
	mockRepo.AssertExpectations(t)
}

func TestProductService_ListProducts(t *testing.T) {
	mockRepo := new(MockProductRepo)
	service := services.NewProductService(mockRepo, nil)

	page := []models.Product{
		{ID: "1", Title: "A", Images: []models.ProductImage{{URL: "https://cdn.example.com/a.jpg"}}},
		{ID: "2", Title: "B", Images: []models.ProductImage{}},
	}
	mockRepo.On("List", 10, 0).Return(page, nil).Once()

	flat, err := service.ListProducts(10, 0)
	assert.NoError(t, err)
	assert.Len(t, flat, 2)
	assert.Equal(t, []string{"https://cdn.example.com/a.jpg"}, flat[0].Images)
	assert.Equal(t, []string{}, flat[1].Images)
	mockRepo.AssertExpectations(t)
}

func TestProductService_DeleteProduct(t *testing.T) {
	mockRepo := new(MockProductRepo)
	service := services.NewProductService(mockRepo, nil)

	stored := &models.Product{ID: testUUID, Title: "T-Shirt", Slug: "t-shirt"}
	mockRepo.On("FindByID", testUUID).Return(stored, nil).Once()
	mockRepo.On("Delete", testUUID).Return(nil).Once()

	err := service.DeleteProduct(testUUID)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	// Deleting a missing product surfaces not-found with the term.
	notFound := fmt.Errorf("failed to get product: %w", gorm.ErrRecordNotFound)
	mockRepo.On("FindByID", testUUID).Return(nil, notFound).Once()
	err = service.DeleteProduct(testUUID)
	assert.True(t, errors.Is(err, services.ErrProductNotFound))
	mockRepo.AssertExpectations(t)
}

func TestProductService_DeleteAllProducts(t *testing.T) {
	mockRepo := new(MockProductRepo)
	service := services.NewProductService(mockRepo, nil)

	mockRepo.On("DeleteAll").Return(int64(7), nil).Once()

	count, err := service.DeleteAllProducts()
	assert.NoError(t, err)
	assert.Equal(t, int64(7), count)
	mockRepo.AssertExpectations(t)
}
