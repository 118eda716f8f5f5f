package shell

import "errors"

// Shell construction errors
var (
	ErrEmptyTable       = errors.New("route table has no routes")
	ErrInvalidPattern   = errors.New("invalid route pattern")
	ErrDuplicatePattern = errors.New("duplicate route pattern")
	ErrDuplicateName    = errors.New("duplicate route name")
	ErrInvalidName      = errors.New("invalid route name")
	ErrNilView          = errors.New("route has no view")
	ErrUnknownNavTarget = errors.New("navigation link targets an unregistered path")
	ErrEmptyBrand       = errors.New("brand cannot be empty")
)
