package mtypes

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Parse reads a literal into the plain value of its kind: "true" or "false", a base-10 integer,
// a rational "n//d", a float such as "2.5", "1e-3" or "Inf", or a complex such as "1+2i".
func Parse(s string) (any, error) {
	s = strings.TrimSpace(s)
	switch s {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}

	if num, den, found := strings.Cut(s, "//"); found {
		n, err := parseInt(num)
		if err != nil {
			return nil, err
		}
		d, err := parseInt(den)
		if err != nil {
			return nil, err
		}
		return rat(NewRational(n, d))
	}

	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i, nil
	} else if errors.Is(err, strconv.ErrRange) {
		return nil, fmt.Errorf("%w: %q does not fit int64", ErrOverflow, s)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f, nil
	}
	if c, err := strconv.ParseComplex(s, 128); err == nil {
		return c, nil
	}
	return nil, fmt.Errorf("%w: cannot parse %q", ErrInvalidArgument, s)
}

func parseInt(s string) (int64, error) {
	i, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	switch {
	case errors.Is(err, strconv.ErrRange):
		return 0, fmt.Errorf("%w: %q does not fit int64", ErrOverflow, s)
	case err != nil:
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidArgument, s)
	}
	return i, nil
}
