package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	ErrMsgNilRequest      = "catch request is nil"
	ErrMsgMissingFishID   = "fish id is required"
	ErrMsgInvalidOverride = "invalid override configuration"
)

// Common domain errors
// The calculator itself normalizes bad inputs instead of rejecting them;
// these errors only surface at the integration edge (HTTP, config).
var (
	ErrNilRequest      = errors.New(ErrMsgNilRequest)
	ErrMissingFishID   = errors.New(ErrMsgMissingFishID)
	ErrInvalidOverride = errors.New(ErrMsgInvalidOverride)
)
