package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/sweetshop/inventory-api/internal/core/domain"
	"github.com/sweetshop/inventory-api/internal/core/ports"
)

// SweetService implements catalog and stock use cases on top of the
// repository. Stock mutations delegate to the repository's atomic
// conditional updates; there is no read-then-write here.
type SweetService struct {
	repo   ports.SweetRepository
	logger zerolog.Logger
}

func NewSweetService(repo ports.SweetRepository, logger zerolog.Logger) *SweetService {
	return &SweetService{repo: repo, logger: logger}
}

// List returns the full catalog, newest-created first.
func (s *SweetService) List(ctx context.Context) ([]*domain.Sweet, error) {
	return s.repo.List(ctx)
}

// Search filters the catalog by case-insensitive name substring and/or exact
// category. Absent filters impose no constraint.
func (s *SweetService) Search(ctx context.Context, filter ports.SearchSweetsFilter) ([]*domain.Sweet, error) {
	return s.repo.Search(ctx, filter)
}

func (s *SweetService) Create(ctx context.Context, input ports.CreateSweetInput) (*domain.Sweet, error) {
	if input.Name == "" || input.Category == "" {
		return nil, domain.ErrInvalidInput
	}
	if input.Price < 0 || input.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}

	sweet := &domain.Sweet{
		Name:     input.Name,
		Category: input.Category,
		Price:    input.Price,
		Quantity: input.Quantity,
	}

	created, err := s.repo.Create(ctx, sweet)
	if err != nil {
		s.logger.Error().Err(err).Str("name", input.Name).Msg("failed to create sweet")
		return nil, err
	}

	s.logger.Info().Str("sweet_id", created.ID).Str("name", created.Name).Msg("sweet created")
	return created, nil
}

// Update merges an allow-listed patch into an existing sweet. An empty patch
// is rejected before touching the store.
func (s *SweetService) Update(ctx context.Context, id string, patch ports.SweetPatch) (*domain.Sweet, error) {
	if patch.IsEmpty() {
		return nil, domain.ErrInvalidInput
	}
	if patch.Name != nil && *patch.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if patch.Category != nil && *patch.Category == "" {
		return nil, domain.ErrInvalidInput
	}
	if patch.Price != nil && *patch.Price < 0 {
		return nil, domain.ErrInvalidInput
	}
	if patch.Quantity != nil && *patch.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}

	return s.repo.Update(ctx, id, patch)
}

func (s *SweetService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("sweet_id", id).Msg("sweet deleted")
	return nil
}

// Purchase decrements stock by exactly one. The repository performs the
// check-and-decrement as a single conditional update, so two concurrent
// purchases of the last unit cannot both succeed.
func (s *SweetService) Purchase(ctx context.Context, id string) (*domain.Sweet, error) {
	sweet, err := s.repo.DecrementStock(ctx, id)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("sweet_id", sweet.ID).Int("quantity", sweet.Quantity).Msg("sweet purchased")
	return sweet, nil
}

// Restock adds quantity units of stock. Zero or negative amounts are invalid.
func (s *SweetService) Restock(ctx context.Context, id string, quantity int) (*domain.Sweet, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	sweet, err := s.repo.IncrementStock(ctx, id, quantity)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("sweet_id", sweet.ID).Int("quantity", sweet.Quantity).Msg("sweet restocked")
	return sweet, nil
}
