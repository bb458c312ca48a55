package repositories

import (
	"catalog/internal/models"
)

// ProductRepository defines the interface for product data access. Every
// mutation normalizes the product slug before persisting; reads document
// which relations they load so callers never depend on implicit eager
// loading.
type ProductRepository interface {
	// Create persists a new product together with its staged image rows.
	// An empty slug is derived from the title first.
	Create(product *models.Product) error
	// Update persists the product's scalar fields. The image collection is
	// left untouched.
	Update(product *models.Product) error
	// UpdateWithImages atomically replaces the product's image collection
	// with rows built from imageURLs and persists the scalar fields. On any
	// failure the previous images remain fully intact.
	UpdateWithImages(product *models.Product, imageURLs []string) error
	// FindByID loads a product with its images and owning user.
	FindByID(id string) (*models.Product, error)
	// FindByTitleOrSlug matches title case-insensitively (callers pass the
	// upper-cased term) or slug exactly, loading images and the owning
	// user. At most one result; first match wins.
	FindByTitleOrSlug(title, slug string) (*models.Product, error)
	// List returns a page of products with their images. The owning user is
	// not loaded on this path.
	List(limit, offset int) ([]models.Product, error)
	// Delete removes a product and all of its image rows.
	Delete(id string) error
	// DeleteAll removes every product and image row, returning the number
	// of products removed.
	DeleteAll() (int64, error)
}
