package handlers

import (
	"errors"
	"fmt"

	"catalog/internal/repositories"
	"catalog/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ProductHandler handles HTTP requests for the product catalog.
type ProductHandler struct {
	service  *services.ProductService
	userRepo repositories.UserRepository
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService, userRepo repositories.UserRepository) *ProductHandler {
	return &ProductHandler{
		service:  service,
		userRepo: userRepo,
		validate: validator.New(),
	}
}

// RegisterPublicRoutes registers the read routes. Browsing the catalog
// needs no token.
func (h *ProductHandler) RegisterPublicRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleList)
	productRoutes.Get("/:term", h.HandleFind)
}

// RegisterProtectedRoutes registers the write routes; the router is
// expected to carry the auth middleware.
func (h *ProductHandler) RegisterProtectedRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Post("/", h.HandleCreate)
	productRoutes.Patch("/:id", h.HandleUpdate)
	productRoutes.Delete("/:id", h.HandleDelete)
}

// respondServiceError maps the service error taxonomy onto HTTP statuses:
// not-found is a 404 with the failing term, a duplicate key is a 400 with
// the constraint detail, everything else is an opaque 500.
func respondServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrProductNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": err.Error(),
		})
	case errors.Is(err, services.ErrDuplicateKey):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Duplicate product title or slug",
			"error":   err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": services.ErrUnexpected.Error(),
		})
	}
}

// validationErrorResponse renders validator failures per field.
func validationErrorResponse(c *fiber.Ctx, err error) error {
	validationErrors := err.(validator.ValidationErrors)
	errorMessages := make(map[string]string)
	for _, e := range validationErrors {
		errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Validation failed",
		"errors":  errorMessages,
	})
}

// HandleList returns a page of products with images flattened to URLs.
func (h *ProductHandler) HandleList(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 10)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	products, err := h.service.ListProducts(limit, offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(products)
}

// HandleFind resolves a product by ID, title or slug.
func (h *ProductHandler) HandleFind(c *fiber.Ctx) error {
	term := c.Params("term")
	product, err := h.service.FindProductFlat(term)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(product)
}

// HandleCreate creates a new product owned by the authenticated user.
func (h *ProductHandler) HandleCreate(c *fiber.Ctx) error {
	var input services.CreateProductInput
	if err := c.BodyParser(&input); err != nil {
		log.Debug().Err(err).Msg("error parsing create product request body")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(input); err != nil {
		return validationErrorResponse(c, err)
	}

	userID, _ := c.Locals("user_id").(string)
	owner, err := h.userRepo.GetByID(userID)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Authenticated user no longer exists",
		})
	}

	created, err := h.service.CreateProduct(input, owner)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// HandleUpdate applies a partial update; an images field replaces the
// whole image collection atomically.
func (h *ProductHandler) HandleUpdate(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": fmt.Sprintf("Validation failed, %s is not a valid product ID", id),
		})
	}

	var input services.UpdateProductInput
	if err := c.BodyParser(&input); err != nil {
		log.Debug().Err(err).Msg("error parsing update product request body")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(input); err != nil {
		return validationErrorResponse(c, err)
	}

	updated, err := h.service.UpdateProduct(id, input)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(updated)
}

// HandleDelete removes a product and its images.
func (h *ProductHandler) HandleDelete(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": fmt.Sprintf("Validation failed, %s is not a valid product ID", id),
		})
	}

	if err := h.service.DeleteProduct(id); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Product %s deleted successfully", id),
	})
}
