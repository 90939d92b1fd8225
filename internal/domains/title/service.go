package title

import (
	"context"

	"github.com/google/uuid"
)

// Service is the business logic contract for titles.
type Service interface {
	List(ctx context.Context, req ListRequest) (*ListResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*Title, error)
	Create(ctx context.Context, req CreateRequest) (*Title, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (*Title, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
