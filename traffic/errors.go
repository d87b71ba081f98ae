package traffic

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is matched by every argument validation error in this package.
var ErrInvalidArgument = errors.New("invalid argument")

// InvalidArgumentError reports a rejected input value.
type InvalidArgumentError struct {
	Field string
	Value int
	Msg   string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %s=%d: %s", e.Field, e.Value, e.Msg)
}

func (e *InvalidArgumentError) Unwrap() error { return ErrInvalidArgument }
