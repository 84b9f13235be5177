package simsearch

import "errors"

var (
	// ErrNegativeWeight is returned when a scorer carries a negative weight.
	ErrNegativeWeight = errors.New("scorer weight must be non-negative")

	// ErrNoFunction is returned when a scorer has no scoring function.
	ErrNoFunction = errors.New("scorer requires a scoring function")

	// ErrNoStateConstructor is returned when a stateful scorer has no state
	// constructor.
	ErrNoStateConstructor = errors.New("stateful scorer requires a state constructor")
)
