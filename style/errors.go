package style

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is wrapped by every error caused by a malformed
	// styling configuration.
	ErrConfiguration = errors.New("invalid style configuration")

	// ErrInvalidOperation is returned when an operation is not defined for
	// the kind of view it was invoked on.
	ErrInvalidOperation = errors.New("invalid operation")
)

func configError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConfiguration, fmt.Sprintf(format, args...))
}
