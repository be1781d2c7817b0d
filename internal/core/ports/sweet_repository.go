package ports

import (
	"context"

	"github.com/sweetshop/inventory-api/internal/core/domain"
)

// SearchSweetsFilter carries the optional catalog filters. Both compose with
// AND semantics; a zero value means "no constraint".
type SearchSweetsFilter struct {
	Name     string // case-insensitive substring match
	Category string // exact match
}

// SweetPatch is the allow-listed set of updatable fields. Nil means "leave
// unchanged". Caller-supplied field names never reach the store directly.
type SweetPatch struct {
	Name     *string
	Category *string
	Price    *float64
	Quantity *int
}

// IsEmpty reports whether the patch carries no changes at all.
func (p SweetPatch) IsEmpty() bool {
	return p.Name == nil && p.Category == nil && p.Price == nil && p.Quantity == nil
}

// SweetRepository defines persistence operations for sweets.
// List and Search return records newest-created first.
type SweetRepository interface {
	Create(ctx context.Context, s *domain.Sweet) (*domain.Sweet, error)
	FindByID(ctx context.Context, id string) (*domain.Sweet, error)
	List(ctx context.Context) ([]*domain.Sweet, error)
	Search(ctx context.Context, filter SearchSweetsFilter) ([]*domain.Sweet, error)
	Update(ctx context.Context, id string, patch SweetPatch) (*domain.Sweet, error)
	Delete(ctx context.Context, id string) error
	// DecrementStock atomically applies quantity = quantity - 1 iff quantity > 0
	// and returns the post-decrement record. ErrOutOfStock when the conditional
	// update matches no row for an existing sweet.
	DecrementStock(ctx context.Context, id string) (*domain.Sweet, error)
	// IncrementStock atomically applies quantity = quantity + amount.
	IncrementStock(ctx context.Context, id string, amount int) (*domain.Sweet, error)
}
