package jsonpatch

import (
	"errors"

	"github.com/signadot/jsonpatch/pointer"
)

var (
	// ErrConflict reports a failed test operation or a move whose
	// destination lies inside the moved subtree.
	ErrConflict = errors.New("conflict")

	// ErrInvalidPatch reports a structurally malformed patch document:
	// an unknown operation kind or a missing required field.
	ErrInvalidPatch = errors.New("invalid patch")

	// Address failures carry the pointer package's classes.
	ErrInvalidPointer = pointer.ErrInvalid
	ErrNotFound       = pointer.ErrNotFound
)
