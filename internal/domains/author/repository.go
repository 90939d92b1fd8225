package author

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data access contract for authors.
type Repository interface {
	Create(ctx context.Context, a *Author) error

	// FindByID returns ErrAuthorNotFound when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*Author, error)

	// FindByEmail matches case-insensitively (emails are stored lowercase).
	FindByEmail(ctx context.Context, email string) (*Author, error)

	// List returns authors sorted by priority descending then name.
	// activeOnly restricts to is_active = true.
	List(ctx context.Context, activeOnly bool) ([]Author, error)

	Update(ctx context.Context, a *Author) error
	Delete(ctx context.Context, id uuid.UUID) error

	// SetVisibilityAll flips is_active on every author and reports how
	// many rows were touched.
	SetVisibilityAll(ctx context.Context, isActive bool) (int64, error)
}
