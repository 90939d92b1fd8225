package export

import "context"

// Service produces the admin export reports. All reports load the full
// tables and shape them in memory; acceptable at catalog scale.
type Service interface {
	Authors(ctx context.Context) ([]AuthorRow, error)
	Titles(ctx context.Context) ([]TitleRow, error)

	// AuthorsWithTitles builds the joined report: every author appears
	// exactly once, with the titles that belong to it. includeInactive
	// keeps inactive titles in the report; when false they are dropped
	// but their authors are not.
	AuthorsWithTitles(ctx context.Context, includeInactive bool) ([]AuthorWithTitles, error)
}
