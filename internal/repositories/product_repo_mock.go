package repositories

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"catalog/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MockProductRepository is an in-memory implementation of
// ProductRepository. It enforces the same uniqueness and slug rules as the
// GORM implementation so service and seed tests exercise real behavior.
type MockProductRepository struct {
	products map[string]models.Product
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[string]models.Product),
	}
}

// violatesUniqueness reports whether another product already holds the
// candidate's title or slug. Callers must hold the lock.
func (r *MockProductRepository) violatesUniqueness(candidate *models.Product) bool {
	for id, p := range r.products {
		if id == candidate.ID {
			continue
		}
		if p.Title == candidate.Title || p.Slug == candidate.Slug {
			return true
		}
	}
	return false
}

// Create adds a new product, deriving and normalizing the slug first.
func (r *MockProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	normalizeForInsert(product)
	if r.violatesUniqueness(product) {
		return fmt.Errorf("failed to create product: %w", gorm.ErrDuplicatedKey)
	}
	for i := range product.Images {
		product.Images[i].ProductID = product.ID
	}
	r.products[product.ID] = *product
	return nil
}

// Update modifies an existing product's scalar fields, keeping whatever
// images are already stored.
func (r *MockProductRepository) Update(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.products[product.ID]
	if !ok {
		return fmt.Errorf("product with ID %s not found for update: %w", product.ID, gorm.ErrRecordNotFound)
	}
	product.Slug = models.NormalizeSlug(product.Slug)
	if r.violatesUniqueness(product) {
		return fmt.Errorf("failed to update product: %w", gorm.ErrDuplicatedKey)
	}
	stored := *product
	stored.Images = existing.Images
	r.products[product.ID] = stored
	return nil
}

// UpdateWithImages atomically replaces the image collection. The map write
// happens once, after every check passed, so a failure leaves the previous
// state intact exactly like the transactional GORM path.
func (r *MockProductRepository) UpdateWithImages(product *models.Product, imageURLs []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[product.ID]; !ok {
		return fmt.Errorf("product with ID %s not found for update: %w", product.ID, gorm.ErrRecordNotFound)
	}
	product.Slug = models.NormalizeSlug(product.Slug)
	if r.violatesUniqueness(product) {
		return fmt.Errorf("failed to update product: %w", gorm.ErrDuplicatedKey)
	}
	images := make([]models.ProductImage, 0, len(imageURLs))
	for i, url := range imageURLs {
		images = append(images, models.ProductImage{ID: uint(i + 1), URL: url, ProductID: product.ID})
	}
	product.Images = images
	r.products[product.ID] = *product
	return nil
}

// FindByID returns a product by its ID with its images.
func (r *MockProductRepository) FindByID(id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, gorm.ErrRecordNotFound)
	}
	return &product, nil
}

// FindByTitleOrSlug matches the upper-cased title or the exact slug.
func (r *MockProductRepository) FindByTitleOrSlug(title, slug string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if strings.ToUpper(p.Title) == title || p.Slug == slug {
			product := p
			return &product, nil
		}
	}
	return nil, fmt.Errorf("failed to get product by title %q or slug %q: %w", title, slug, gorm.ErrRecordNotFound)
}

// List returns a page of products ordered by title for determinism.
func (r *MockProductRepository) List(limit, offset int) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		all = append(all, p)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Title < all[j].Title })

	if offset >= len(all) {
		return []models.Product{}, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

// Delete removes a product and its images.
func (r *MockProductRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return fmt.Errorf("product with ID %s not found for deletion: %w", id, gorm.ErrRecordNotFound)
	}
	delete(r.products, id)
	return nil
}

// DeleteAll wipes the catalog and returns the number of removed products.
func (r *MockProductRepository) DeleteAll() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := int64(len(r.products))
	r.products = make(map[string]models.Product)
	return count, nil
}
