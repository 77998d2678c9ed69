package provider

import "errors"

var (
	ErrProviderInvalidName = errors.New("invalid provider name")
	ErrProviderInvalidSlug = errors.New("invalid provider slug")
	ErrProviderNotFound    = errors.New("provider not found")
	ErrProviderExists      = errors.New("provider exists")
	ErrProviderIDEmpty     = errors.New("unable to delete, provider id empty")
	ErrProviderInUse       = errors.New("provider has circuits")
	ErrProviderInternalDB  = errors.New("internal provider database error")
)
