package services

import (
	"fmt"

	"catalog/internal/models"
	"catalog/internal/repositories"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"
)

// SeedService wipes and repopulates the catalog from the static dataset.
// Deletion order matters: products reference users, so products go first.
type SeedService struct {
	productService *ProductService
	userRepo       repositories.UserRepository
	data           SeedData
}

// NewSeedService creates a new SeedService. The seed dataset is validated
// once here; a malformed record is a programming error and fails startup.
func NewSeedService(productService *ProductService, userRepo repositories.UserRepository) (*SeedService, error) {
	validate := validator.New()
	for i, user := range initialData.Users {
		if err := validate.Struct(user); err != nil {
			return nil, fmt.Errorf("invalid seed user at index %d: %w", i, err)
		}
	}
	for i, product := range initialData.Products {
		if err := validate.Struct(product); err != nil {
			return nil, fmt.Errorf("invalid seed product at index %d: %w", i, err)
		}
	}
	return &SeedService{
		productService: productService,
		userRepo:       userRepo,
		data:           initialData,
	}, nil
}

// RunSeed deletes every product and user, reinserts the seed users, and
// inserts the seed products concurrently with the first user as owner.
// Every product insert is attempted; the first failure is reported after
// the group joins, and successfully inserted siblings are not rolled back.
// A successful run publishes a seed.completed event when a broker is
// configured.
func (s *SeedService) RunSeed() error {
	if _, err := s.productService.DeleteAllProducts(); err != nil {
		return fmt.Errorf("failed to clear products: %w", err)
	}
	if _, err := s.userRepo.DeleteAll(); err != nil {
		return fmt.Errorf("failed to clear users: %w", err)
	}

	admin, err := s.insertSeedUsers()
	if err != nil {
		return err
	}

	var g errgroup.Group
	for _, input := range s.data.Products {
		input := input
		g.Go(func() error {
			if _, err := s.productService.CreateProduct(input, admin); err != nil {
				return fmt.Errorf("failed to seed product %q: %w", input.Title, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	s.productService.publishEvent("seed.completed", map[string]interface{}{
		"users":    len(s.data.Users),
		"products": len(s.data.Products),
	})
	log.Info().Int("users", len(s.data.Users)).Int("products", len(s.data.Products)).
		Msg("seed executed")
	return nil
}

// insertSeedUsers creates the seed users and returns the first one, which
// owns every seeded product.
func (s *SeedService) insertSeedUsers() (*models.User, error) {
	var admin *models.User
	for _, record := range s.data.Users {
		hashed, err := bcrypt.GenerateFromPassword([]byte(record.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash seed password: %w", err)
		}
		user := &models.User{
			Email:    record.Email,
			FullName: record.FullName,
			Password: string(hashed),
			IsActive: true,
			Roles:    models.StringList(record.Roles),
		}
		if err := s.userRepo.Create(user); err != nil {
			return nil, fmt.Errorf("failed to seed user %s: %w", record.Email, err)
		}
		if admin == nil {
			admin = user
		}
	}
	if admin == nil {
		return nil, fmt.Errorf("seed dataset has no users")
	}
	return admin, nil
}
