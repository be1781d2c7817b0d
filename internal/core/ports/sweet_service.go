package ports

import (
	"context"

	"github.com/sweetshop/inventory-api/internal/core/domain"
)

// CreateSweetInput carries all data needed to add a catalog item.
type CreateSweetInput struct {
	Name     string
	Category string
	Price    float64
	Quantity int
}

// SweetService defines use-case operations on the sweets catalog.
type SweetService interface {
	List(ctx context.Context) ([]*domain.Sweet, error)
	Search(ctx context.Context, filter SearchSweetsFilter) ([]*domain.Sweet, error)
	Create(ctx context.Context, input CreateSweetInput) (*domain.Sweet, error)
	Update(ctx context.Context, id string, patch SweetPatch) (*domain.Sweet, error)
	Delete(ctx context.Context, id string) error
	Purchase(ctx context.Context, id string) (*domain.Sweet, error)
	Restock(ctx context.Context, id string, quantity int) (*domain.Sweet, error)
}
