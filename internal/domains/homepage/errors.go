package homepage

import "errors"

var ErrContentNotFound = errors.New("homepage content not found")
