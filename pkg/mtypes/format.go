package mtypes

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/abstratium-informatique-sarl/mtypes/pkg/metrics"
)

const (
	DefaultPrecision = 5
	MinPrecision     = 3
	MaxPrecision     = 7
	DefaultNotation  = 'E'
)

type formatOptions struct {
	aligned   bool
	notation  rune
	precision int
}

// Option changes how ToString renders a value. Later options override earlier ones.
type Option func(*formatOptions)

// Aligned pads "true" and non-negative numbers with one leading space, so that columns of values
// line up with "false" and negative numbers.
func Aligned(aligned bool) Option {
	return func(o *formatOptions) { o.aligned = aligned }
}

// Notation selects the layout of reals: 'E' or 'e' for scientific, anything else for fixed-point.
func Notation(notation rune) Option {
	return func(o *formatOptions) { o.notation = notation }
}

// Precision is the number of significant figures of reals, between MinPrecision and MaxPrecision.
func Precision(precision int) Option {
	return func(o *formatOptions) { o.precision = precision }
}

func ValidatePrecision(precision int) error {
	if precision < MinPrecision || precision > MaxPrecision {
		return fmt.Errorf("%w: precision %d is outside [%d, %d]", ErrInvalidArgument, precision, MinPrecision, MaxPrecision)
	}
	return nil
}

// ToString renders a box or plain value.
func ToString(v any, opts ...Option) (string, error) {
	o := formatOptions{notation: DefaultNotation, precision: DefaultPrecision}
	for _, opt := range opts {
		opt(&o)
	}
	if err := ValidatePrecision(o.precision); err != nil {
		return "", failed("format", err)
	}
	x, err := operandOf(v)
	if err != nil {
		return "", failed("format", err)
	}
	metrics.Dispatched("format", x.kind.String())

	var s string
	switch x.kind {
	case KindBool:
		s = strconv.FormatBool(x.b)
		if o.aligned && x.b {
			s = " " + s
		}
		return s, nil
	case KindInteger:
		s = strconv.FormatInt(x.i, 10)
	case KindRational:
		s = x.r.String()
	case KindReal:
		s = formatReal(x.f, o)
	default:
		re, im := formatReal(real(x.c), o), formatReal(math.Abs(imag(x.c)), o)
		s = re + lo.Ternary(math.Signbit(imag(x.c)), " - ", " + ") + im + "i"
	}
	if o.aligned && !strings.HasPrefix(s, "-") {
		s = " " + s
	}
	return s, nil
}

func formatReal(f float64, o formatOptions) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Inf"
	case math.IsInf(f, -1):
		return "-Inf"
	}
	if o.notation == 'E' || o.notation == 'e' {
		return strconv.FormatFloat(f, byte(o.notation), o.precision-1, 64)
	}

	// round to the significant figures first, then print only the digits that are significant
	sci := strconv.FormatFloat(f, 'e', o.precision-1, 64)
	rounded, _ := strconv.ParseFloat(sci, 64)
	exp, _ := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
	return strconv.FormatFloat(rounded, 'f', max(0, o.precision-1-exp), 64)
}
