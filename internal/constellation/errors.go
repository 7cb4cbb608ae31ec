package constellation

import "errors"

// ErrUnknownStar is returned for a star index outside the constellation.
var ErrUnknownStar = errors.New("unknown star")
