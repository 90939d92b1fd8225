package author

import (
	"context"

	"github.com/google/uuid"
)

// Service is the business logic contract for authors and authentication.
// Every returned Author is sanitized (no credential material).
type Service interface {
	// Register creates a credentialed author account and issues a token.
	Register(ctx context.Context, req RegisterRequest) (*AuthResult, error)

	// Login verifies credentials and issues a token. Unknown email and
	// wrong password both yield ErrInvalidCredentials.
	Login(ctx context.Context, req LoginRequest) (*AuthResult, error)

	List(ctx context.Context, includeInactive bool) ([]Author, error)
	Get(ctx context.Context, id uuid.UUID) (*Author, error)
	Create(ctx context.Context, req CreateRequest) (*Author, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (*Author, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SetVisibilityAll(ctx context.Context, isActive bool) (int64, error)
}
