package models

import "errors"

// Domain error sentinels. Handlers match on these with errors.Is to pick
// the HTTP status; everything else is treated as a store failure.
var (
	ErrNotFound        = errors.New("record not found")
	ErrDuplicate       = errors.New("duplicate record")
	ErrAlreadyAccepted = errors.New("exchange already accepted")
	ErrInvalidID       = errors.New("invalid identifier")
)
