package homepage

import (
	"context"

	"github.com/google/uuid"
)

// Service is the business logic contract for homepage content.
type Service interface {
	// ListActive serves the public storefront; results may be briefly
	// cached, and any mutation invalidates the cache.
	ListActive(ctx context.Context) ([]Content, error)
	ListActiveByType(ctx context.Context, contentType Type) ([]Content, error)

	Get(ctx context.Context, id uuid.UUID) (*Content, error)
	Create(ctx context.Context, req CreateRequest) (*Content, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (*Content, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
