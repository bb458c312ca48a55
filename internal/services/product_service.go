package services

import (
	"errors"
	"strings"

	"catalog/internal/models"
	"catalog/internal/repositories"
	"catalog/pkg/rabbitmq"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// CreateProductInput carries the fields for a new product. Images are
// plain URL strings; image rows are built from them on the way in.
type CreateProductInput struct {
	Title       string   `json:"title" validate:"required,min=1"`
	Price       float64  `json:"price" validate:"gte=0"`
	Description *string  `json:"description"`
	Slug        string   `json:"slug"`
	Stock       int      `json:"stock" validate:"gte=0"`
	Sizes       []string `json:"sizes" validate:"required,min=1"`
	Gender      string   `json:"gender" validate:"required,oneof=men women kid unisex"`
	Tags        []string `json:"tags"`
	Images      []string `json:"images" validate:"omitempty,dive,url"`
}

// UpdateProductInput is the partial-update shape. Nil fields are left
// untouched; a nil Images slice means the image collection is not replaced.
type UpdateProductInput struct {
	Title       *string  `json:"title" validate:"omitempty,min=1"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Description *string  `json:"description"`
	Slug        *string  `json:"slug"`
	Stock       *int     `json:"stock" validate:"omitempty,gte=0"`
	Sizes       []string `json:"sizes"`
	Gender      *string  `json:"gender" validate:"omitempty,oneof=men women kid unisex"`
	Tags        []string `json:"tags"`
	Images      []string `json:"images" validate:"omitempty,dive,url"`
}

// ProductService orchestrates catalog reads and writes on top of the
// product repository and publishes catalog events when a broker client is
// configured.
type ProductService struct {
	repo     repositories.ProductRepository
	mqClient *rabbitmq.Client
}

// NewProductService creates a new ProductService. mqClient may be nil, in
// which case event publishing is skipped.
func NewProductService(repo repositories.ProductRepository, mqClient *rabbitmq.Client) *ProductService {
	return &ProductService{
		repo:     repo,
		mqClient: mqClient,
	}
}

// CreateProduct persists a new product owned by owner, building image rows
// from the input URLs, and returns the flattened view.
func (s *ProductService) CreateProduct(input CreateProductInput, owner *models.User) (*models.FlatProduct, error) {
	images := make([]models.ProductImage, 0, len(input.Images))
	for _, url := range input.Images {
		images = append(images, models.ProductImage{URL: url})
	}

	product := &models.Product{
		Title:       input.Title,
		Price:       input.Price,
		Description: input.Description,
		Slug:        input.Slug,
		Stock:       input.Stock,
		Sizes:       models.StringList(input.Sizes),
		Gender:      input.Gender,
		Tags:        models.StringList(input.Tags),
		Images:      images,
		UserID:      owner.ID,
	}

	if err := s.repo.Create(product); err != nil {
		return nil, translateDBError(err)
	}

	product.User = *owner
	s.publishEvent("product.created", map[string]interface{}{"product_id": product.ID})
	return models.Flatten(product), nil
}

// ListProducts returns a page of products with images flattened to URL
// strings. No total count is computed.
func (s *ProductService) ListProducts(limit, offset int) ([]*models.FlatProduct, error) {
	products, err := s.repo.List(limit, offset)
	if err != nil {
		return nil, translateDBError(err)
	}
	flat := make([]*models.FlatProduct, 0, len(products))
	for i := range products {
		flat = append(flat, models.Flatten(&products[i]))
	}
	return flat, nil
}

// FindProduct resolves term to a product: a valid UUID is looked up by
// key, anything else is matched case-insensitively against the title or
// exactly against the slug.
func (s *ProductService) FindProduct(term string) (*models.Product, error) {
	var (
		product *models.Product
		err     error
	)
	if _, parseErr := uuid.Parse(term); parseErr == nil {
		product, err = s.repo.FindByID(term)
	} else {
		product, err = s.repo.FindByTitleOrSlug(strings.ToUpper(term), strings.ToLower(term))
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundError(term)
		}
		return nil, translateDBError(err)
	}
	return product, nil
}

// FindProductFlat resolves term like FindProduct and returns the flattened
// view; this is the shape external responses use.
func (s *ProductService) FindProductFlat(term string) (*models.FlatProduct, error) {
	product, err := s.FindProduct(term)
	if err != nil {
		return nil, err
	}
	return models.Flatten(product), nil
}

// UpdateProduct merges the patch onto the stored product and persists it.
// When the patch carries an image list the write goes through the
// transactional image-replacing path; otherwise the image collection is
// left untouched. The slug is re-normalized from its current value, never
// re-derived from a changed title.
func (s *ProductService) UpdateProduct(id string, input UpdateProductInput) (*models.FlatProduct, error) {
	product, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundError(id)
		}
		return nil, translateDBError(err)
	}

	if input.Title != nil {
		product.Title = *input.Title
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Description != nil {
		product.Description = input.Description
	}
	if input.Slug != nil {
		product.Slug = *input.Slug
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}
	if input.Sizes != nil {
		product.Sizes = models.StringList(input.Sizes)
	}
	if input.Gender != nil {
		product.Gender = *input.Gender
	}
	if input.Tags != nil {
		product.Tags = models.StringList(input.Tags)
	}

	if input.Images != nil {
		err = s.repo.UpdateWithImages(product, input.Images)
	} else {
		err = s.repo.Update(product)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundError(id)
		}
		return nil, translateDBError(err)
	}

	s.publishEvent("product.updated", map[string]interface{}{"product_id": id})
	return s.FindProductFlat(id)
}

// DeleteProduct resolves term to a product and removes it together with
// its image rows.
func (s *ProductService) DeleteProduct(term string) error {
	product, err := s.FindProduct(term)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(product.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFoundError(term)
		}
		return translateDBError(err)
	}
	s.publishEvent("product.deleted", map[string]interface{}{"product_id": product.ID})
	return nil
}

// DeleteAllProducts wipes the whole catalog and returns the number of
// products removed. Only the seed orchestrator calls this.
func (s *ProductService) DeleteAllProducts() (int64, error) {
	count, err := s.repo.DeleteAll()
	if err != nil {
		return 0, translateDBError(err)
	}
	return count, nil
}

// publishEvent sends a catalog event to the broker. Publish failures are
// logged and never fail the originating write; a nil client skips
// publishing entirely.
func (s *ProductService) publishEvent(eventType string, payload map[string]interface{}) {
	if s.mqClient == nil {
		return
	}
	if err := s.mqClient.PublishCatalogEvent(eventType, payload); err != nil {
		log.Warn().Err(err).Str("event", eventType).Msg("failed to publish catalog event")
	}
}
