package handlers

import (
	"catalog/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// SeedHandler exposes the reseeding routine over HTTP.
type SeedHandler struct {
	seedService *services.SeedService
}

// NewSeedHandler creates a new SeedHandler.
func NewSeedHandler(seedService *services.SeedService) *SeedHandler {
	return &SeedHandler{
		seedService: seedService,
	}
}

// RegisterRoutes registers the seed route with the Fiber app.
func (h *SeedHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/seed", h.HandleRunSeed)
}

// HandleRunSeed wipes and repopulates the catalog from the static dataset.
func (h *SeedHandler) HandleRunSeed(c *fiber.Ctx) error {
	if err := h.seedService.RunSeed(); err != nil {
		log.Error().Err(err).Msg("seed run failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Seed failed",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Seed executed",
	})
}
