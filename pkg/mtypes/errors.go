package mtypes

import (
	"errors"
	"fmt"
	"strings"
)

var ErrTypeMismatch = errors.New("MTYPES-1001 type mismatch")
var ErrInvalidArgument = errors.New("MTYPES-1002 invalid argument")
var ErrDivideByZero = errors.New("MTYPES-1003 divide by zero")
var ErrOverflow = errors.New("MTYPES-1004 overflow")

var allErrors = []error{ErrTypeMismatch, ErrInvalidArgument, ErrDivideByZero, ErrOverflow}

func mismatch(op string, kinds ...Kind) error {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return fmt.Errorf("%w: %s is not defined for (%s)", ErrTypeMismatch, op, strings.Join(names, ", "))
}

// ErrorCode returns the code of a package error, e.g. "MTYPES-1003", or "other". It is short and
// bounded, so it can be used as a metrics label.
func ErrorCode(err error) string {
	for _, e := range allErrors {
		if errors.Is(err, e) {
			return strings.SplitN(e.Error(), " ", 2)[0]
		}
	}
	return "other"
}
