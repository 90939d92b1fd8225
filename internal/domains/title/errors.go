package title

import "errors"

var (
	ErrTitleNotFound   = errors.New("title not found")
	ErrAuthorNotFound  = errors.New("referenced author not found")
	ErrInvalidCategory = errors.New("invalid category")
)
