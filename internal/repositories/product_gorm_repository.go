package repositories

import (
	"fmt"

	"catalog/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
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

// normalizeForInsert seeds the slug from the title when absent, then
// canonicalizes it. The update path re-normalizes the stored slug only.
func normalizeForInsert(product *models.Product) {
	if product.Slug == "" {
		product.Slug = product.Title
	}
	product.Slug = models.NormalizeSlug(product.Slug)
}

// Create persists a new product and its staged image rows in one go. The
// owning user is referenced by UserID only, never written through the
// association.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	normalizeForInsert(product)
	if err := r.db.Omit("User").Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update persists the product's scalar fields only. The slug is
// re-normalized from its current value; associations are not written.
func (r *GORMProductRepository) Update(product *models.Product) error {
	product.Slug = models.NormalizeSlug(product.Slug)
	res := r.db.Omit(clause.Associations).Save(product)
	if res.Error != nil {
		return fmt.Errorf("failed to update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product with ID %s not found for update: %w", product.ID, gorm.ErrRecordNotFound)
	}
	return nil
}

// UpdateWithImages replaces the product's image collection and persists the
// scalar fields inside a single transaction: begin, delete the old rows,
// save, create the new rows, commit. Any failure, the commit included,
// rolls back so no partial state is observable.
func (r *GORMProductRepository) UpdateWithImages(product *models.Product, imageURLs []string) error {
	product.Slug = models.NormalizeSlug(product.Slug)

	tx := r.db.Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	if err := deleteImagesFor(tx, product.ID); err != nil {
		tx.Rollback()
		return err
	}

	images := make([]models.ProductImage, 0, len(imageURLs))
	for _, url := range imageURLs {
		images = append(images, models.ProductImage{URL: url, ProductID: product.ID})
	}

	if err := tx.Omit(clause.Associations).Save(product).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to save product in transaction: %w", err)
	}
	if len(images) > 0 {
		if err := tx.Create(&images).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to create replacement images: %w", err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to commit image replacement: %w", err)
	}
	product.Images = images
	return nil
}

// deleteImagesFor removes every image row owned by productID using the
// given unit of work, so the caller decides the atomic scope.
func deleteImagesFor(tx *gorm.DB, productID string) error {
	if err := tx.Where("product_id = ?", productID).Delete(&models.ProductImage{}).Error; err != nil {
		return fmt.Errorf("failed to delete images for product %s: %w", productID, err)
	}
	return nil
}

// FindByID retrieves a product by its ID, loading images and owning user.
func (r *GORMProductRepository) FindByID(id string) (*models.Product, error) {
	var product models.Product
	err := r.db.Preload("Images").Preload("User").First(&product, "id = ?", id).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// FindByTitleOrSlug retrieves a product whose upper-cased title matches
// title, or whose slug matches slug exactly. Images and owning user are
// loaded.
func (r *GORMProductRepository) FindByTitleOrSlug(title, slug string) (*models.Product, error) {
	var product models.Product
	err := r.db.Preload("Images").Preload("User").
		Where("UPPER(title) = ? OR slug = ?", title, slug).
		First(&product).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get product by title %q or slug %q: %w", title, slug, err)
	}
	return &product, nil
}

// List retrieves a page of products with their images. The owning user is
// deliberately not loaded here to keep listing a two-query read.
func (r *GORMProductRepository) List(limit, offset int) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Preload("Images").Limit(limit).Offset(offset).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// Delete removes a product and its image rows in one transaction. The
// delete is unscoped so the unique title and slug are reusable right away.
func (r *GORMProductRepository) Delete(id string) error {
	tx := r.db.Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}
	if err := deleteImagesFor(tx, id); err != nil {
		tx.Rollback()
		return err
	}
	res := tx.Unscoped().Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		tx.Rollback()
		return fmt.Errorf("failed to delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		tx.Rollback()
		return fmt.Errorf("product with ID %s not found for deletion: %w", id, gorm.ErrRecordNotFound)
	}
	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to commit product deletion: %w", err)
	}
	return nil
}

// DeleteAll removes every product and image row, returning the number of
// products removed. Used by reseeding only.
func (r *GORMProductRepository) DeleteAll() (int64, error) {
	tx := r.db.Begin()
	if tx.Error != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}
	if err := tx.Where("1 = 1").Delete(&models.ProductImage{}).Error; err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("failed to delete all images: %w", err)
	}
	res := tx.Unscoped().Where("1 = 1").Delete(&models.Product{})
	if res.Error != nil {
		tx.Rollback()
		return 0, fmt.Errorf("failed to delete all products: %w", res.Error)
	}
	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("failed to commit bulk deletion: %w", err)
	}
	return res.RowsAffected, nil
}
