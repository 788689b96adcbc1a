package pointer

import "errors"

var (
	ErrInvalid  = errors.New("invalid pointer")
	ErrNotFound = errors.New("not found")
)
