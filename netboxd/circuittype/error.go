package circuittype

import "errors"

var (
	ErrTypeInvalidName = errors.New("invalid circuit type name")
	ErrTypeInvalidSlug = errors.New("invalid circuit type slug")
	ErrTypeNotFound    = errors.New("circuit type not found")
	ErrTypeExists      = errors.New("circuit type exists")
	ErrTypeIDEmpty     = errors.New("unable to delete, circuit type id empty")
	ErrTypeInUse       = errors.New("circuit type has circuits")
	ErrTypeInternalDB  = errors.New("internal circuit type database error")
)
