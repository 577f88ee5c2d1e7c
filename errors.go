package argon2

import (
	"errors"
	"fmt"
)

// Sentinel error kinds, per spec §7. Use errors.Is to test for a kind;
// concrete errors returned by this package wrap one of these with
// parameter-specific detail via fmt.Errorf's %w verb.
var (
	// ErrInvalidParameter is returned when a parameter is out of its
	// legal range, or an unsupported version/variant is requested. The
	// working memory is never touched before this error is returned.
	ErrInvalidParameter = errors.New("argon2: invalid parameter")

	// ErrAllocationFailure is returned when the working memory cannot be
	// allocated.
	ErrAllocationFailure = errors.New("argon2: allocation failure")

	// ErrComputationFailure is returned when a fill worker panics or
	// otherwise fails; the working memory is zeroized before this error
	// is returned.
	ErrComputationFailure = errors.New("argon2: computation failure")

	// ErrCancelled is returned when the caller's context is cancelled at
	// a slice barrier; the working memory is zeroized before this error
	// is returned.
	ErrCancelled = errors.New("argon2: cancelled")
)

func invalidParam(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidParameter, fmt.Sprintf(format, args...))
}
