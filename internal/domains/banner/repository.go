package banner

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository is the data access contract for banners.
type Repository interface {
	Create(ctx context.Context, b *Banner) error
	FindByID(ctx context.Context, id uuid.UUID) (*Banner, error)

	// ListActive returns active banners whose display window contains
	// now, optionally filtered by type, sorted by priority descending
	// then creation time descending, capped at limit.
	ListActive(ctx context.Context, bannerType *Type, limit int, now time.Time) ([]Banner, error)

	Update(ctx context.Context, b *Banner) error
	Delete(ctx context.Context, id uuid.UUID) error

	// DeactivateExpired clears is_active on banners whose end date has
	// passed. Returns the number of rows changed.
	DeactivateExpired(ctx context.Context, now time.Time) (int64, error)
}
