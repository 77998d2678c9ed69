package circuit

import "errors"

var (
	ErrCircuitInvalidCID      = errors.New("invalid circuit id")
	ErrCircuitInvalidProvider = errors.New("circuit provider empty")
	ErrCircuitNotFound        = errors.New("circuit not found")
	ErrCircuitExists          = errors.New("circuit exists")
	ErrCircuitIDEmpty         = errors.New("circuit id empty")
	ErrCircuitInternalDB      = errors.New("internal circuit database error")

	ErrTerminationInvalidSide = errors.New("termination side must be A or Z")
	ErrTerminationNotFound    = errors.New("termination not found")
	ErrTerminationExists      = errors.New("termination exists")
	ErrTerminationInternalDB  = errors.New("internal termination database error")
	ErrNoTerminations         = errors.New("no terminations defined")
)
