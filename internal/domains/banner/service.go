package banner

import (
	"context"

	"github.com/google/uuid"
)

// Service is the business logic contract for banners.
type Service interface {
	// ListActive serves the public storefront; results may be briefly
	// cached, and any mutation invalidates the cache.
	ListActive(ctx context.Context, req ListRequest) ([]Banner, error)

	Get(ctx context.Context, id uuid.UUID) (*Banner, error)
	Create(ctx context.Context, req CreateRequest) (*Banner, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (*Banner, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
