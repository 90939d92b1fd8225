package title

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data access contract for titles.
type Repository interface {
	Create(ctx context.Context, t *Title) error

	// FindByID returns ErrTitleNotFound when absent. The author name is
	// joined in.
	FindByID(ctx context.Context, id uuid.UUID) (*Title, error)

	// List applies the filter and returns the page plus the total count
	// matching the filter. Sorted by priority descending then publish
	// date descending.
	List(ctx context.Context, f Filter) ([]Title, int, error)

	// ListAll returns every title unfiltered, for exports.
	ListAll(ctx context.Context) ([]Title, error)

	Update(ctx context.Context, t *Title) error
	Delete(ctx context.Context, id uuid.UUID) error
}
