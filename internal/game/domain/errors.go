package domain

import "errors"

// ErrEmptyTrick is returned when trick resolution is attempted on a
// trick with no plays recorded.
var ErrEmptyTrick = errors.New("domain: trick has no plays to resolve")
