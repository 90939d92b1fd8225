package homepage

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository is the data access contract for homepage content blocks.
type Repository interface {
	Create(ctx context.Context, c *Content) error
	FindByID(ctx context.Context, id uuid.UUID) (*Content, error)

	// ListActive returns active blocks whose display window contains
	// now, optionally filtered by type, sorted by priority descending
	// then creation time descending.
	ListActive(ctx context.Context, contentType *Type, now time.Time) ([]Content, error)

	Update(ctx context.Context, c *Content) error
	Delete(ctx context.Context, id uuid.UUID) error

	// DeactivateExpired clears is_active on blocks whose end date has
	// passed. Returns the number of rows changed.
	DeactivateExpired(ctx context.Context, now time.Time) (int64, error)
}
