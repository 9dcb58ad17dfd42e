package mtypes

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/abstratium-informatique-sarl/mtypes/pkg/metrics"
)

// Every operator accepts boxes and plain values in any combination, and always returns plain
// values. See KindOf for the accepted plain types.

// approxTolerance is the relative tolerance of ApproxEqual: the float32 machine epsilon, so that
// two float64s are approximately equal when they agree to single (32-bit) precision.
const approxTolerance = 0x1p-23

// compareOp is a predicate over two operands. Operands whose promoted kind lies outside
// [min, max] are a type mismatch.
type compareOp struct {
	name     string
	min, max Kind
	test     func(a, b operand) bool
}

func (op *compareOp) apply(x, y any) (bool, error) {
	a, err := operandOf(x)
	if err != nil {
		return false, failed(op.name, err)
	}
	b, err := operandOf(y)
	if err != nil {
		return false, failed(op.name, err)
	}
	k := promote(a.kind, b.kind)
	if k < op.min || k > op.max {
		return false, failed(op.name, mismatch(op.name, a.kind, b.kind))
	}
	metrics.Dispatched(op.name, k.String())
	return op.test(a, b), nil
}

func equal(a, b operand) bool {
	if a.kind == KindBool && b.kind == KindBool {
		return a.b == b.b
	}
	if a.kind == KindComplex || b.kind == KindComplex {
		return equal(a.realPart(), b.realPart()) && equal(a.imagPart(), b.imagPart())
	}
	c, ok := realCmp(a, b)
	return ok && c == 0
}

func ordered(f func(c int) bool) func(a, b operand) bool {
	return func(a, b operand) bool {
		c, ok := realCmp(a, b)
		return ok && f(c)
	}
}

func approxEqual(a, b operand) bool {
	k := promote(a.kind, b.kind)
	if k == KindComplex {
		x, y := a.to(k).c, b.to(k).c
		if x == y {
			return true
		}
		// an infinite magnitude makes the tolerance infinite too
		if !finite(real(x)) || !finite(imag(x)) || !finite(real(y)) || !finite(imag(y)) {
			return false
		}
		return cmplx.Abs(x-y) <= approxTolerance*max(cmplx.Abs(x), cmplx.Abs(y))
	}
	x, y := a.to(k).f, b.to(k).f
	if x == y {
		return true
	}
	if !finite(x) || !finite(y) {
		return false
	}
	return math.Abs(x-y) <= approxTolerance*max(math.Abs(x), math.Abs(y))
}

func finite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

var (
	equalOp        = compareOp{name: "==", min: KindBool, max: KindComplex, test: equal}
	notEqualOp     = compareOp{name: "!=", min: KindBool, max: KindComplex, test: func(a, b operand) bool { return !equal(a, b) }}
	approxEqualOp  = compareOp{name: "≈", min: KindReal, max: KindComplex, test: approxEqual}
	lessOp         = compareOp{name: "<", min: KindBool, max: KindReal, test: ordered(func(c int) bool { return c < 0 })}
	lessEqualOp    = compareOp{name: "<=", min: KindBool, max: KindReal, test: ordered(func(c int) bool { return c <= 0 })}
	greaterOp      = compareOp{name: ">", min: KindBool, max: KindReal, test: ordered(func(c int) bool { return c > 0 })}
	greaterEqualOp = compareOp{name: ">=", min: KindBool, max: KindReal, test: ordered(func(c int) bool { return c >= 0 })}
)

// Equal compares exactly across kinds: 1//3 does not equal 0.3333333333333333. NaN equals nothing.
func Equal(x, y any) (bool, error) { return equalOp.apply(x, y) }

func NotEqual(x, y any) (bool, error) { return notEqualOp.apply(x, y) }

// ApproxEqual is defined when at least one operand is real or complex. It holds when the values
// agree to single precision.
func ApproxEqual(x, y any) (bool, error) { return approxEqualOp.apply(x, y) }

// Less and the other orderings are defined for all non-complex kinds.
func Less(x, y any) (bool, error) { return lessOp.apply(x, y) }

func LessEqual(x, y any) (bool, error) { return lessEqualOp.apply(x, y) }

func Greater(x, y any) (bool, error) { return greaterOp.apply(x, y) }

func GreaterEqual(x, y any) (bool, error) { return greaterEqualOp.apply(x, y) }

var addOp = binaryOp{
	name:     "+",
	integer:  ok(func(a, b int64) any { return a + b }),
	rational: func(a, b Rational) (any, error) { return rat(a.Add(b)) },
	real:     ok(func(a, b float64) any { return a + b }),
	complex:  ok(func(a, b complex128) any { return a + b }),
}

var subOp = binaryOp{
	name:     "-",
	integer:  ok(func(a, b int64) any { return a - b }),
	rational: func(a, b Rational) (any, error) { return rat(a.Sub(b)) },
	real:     ok(func(a, b float64) any { return a - b }),
	complex:  ok(func(a, b complex128) any { return a - b }),
}

var mulOp = binaryOp{
	name:     "*",
	integer:  ok(func(a, b int64) any { return a * b }),
	rational: func(a, b Rational) (any, error) { return rat(a.Mul(b)) },
	real:     ok(func(a, b float64) any { return a * b }),
	complex:  ok(func(a, b complex128) any { return a * b }),
}

var intDivOp = binaryOp{
	name: "÷",
	integer: func(a, b int64) (any, error) {
		if b == 0 {
			return nil, fmt.Errorf("%w: %d ÷ 0", ErrDivideByZero, a)
		}
		return a / b, nil
	},
}

var modOp = binaryOp{
	name: "%",
	integer: func(a, b int64) (any, error) {
		if b == 0 {
			return nil, fmt.Errorf("%w: %d %% 0", ErrDivideByZero, a)
		}
		return a % b, nil
	},
}

var ratDivOp = binaryOp{
	name:     "//",
	integer:  func(a, b int64) (any, error) { return rat(NewRational(a, b)) },
	rational: func(a, b Rational) (any, error) { return rat(a.Quo(b)) },
}

var divOp = binaryOp{
	name:     "/",
	integer:  ok(func(a, b int64) any { return float64(a) / float64(b) }),
	rational: func(a, b Rational) (any, error) { return rat(a.Quo(b)) },
	real:     ok(func(a, b float64) any { return a / b }),
	complex:  ok(func(a, b complex128) any { return a / b }),
}

var powOp = binaryOp{
	name:    "^",
	integer: ipow,
	rational: func(a, b Rational) (any, error) {
		if b.IsInt() {
			return rat(a.Pow(b.Num()))
		}
		return math.Pow(a.Float64(), b.Float64()), nil
	},
	real:    func(a, b float64) (any, error) { return math.Pow(a, b), nil },
	complex: func(a, b complex128) (any, error) { return cmplx.Pow(a, b), nil },
}

// ipow is exponentiation by squaring. Like the other integer operators it wraps on overflow.
func ipow(a, b int64) (any, error) {
	if b < 0 {
		switch a {
		case 1:
			return int64(1), nil
		case -1:
			if b%2 == 0 {
				return int64(1), nil
			}
			return int64(-1), nil
		}
		return nil, fmt.Errorf("%w: %d^%d is not an integer", ErrInvalidArgument, a, b)
	}
	result := int64(1)
	for b > 0 {
		if b&1 == 1 {
			result *= a
		}
		a *= a
		b >>= 1
	}
	return result, nil
}

func Add(x, y any) (any, error) { return addOp.apply(x, y) }

func Sub(x, y any) (any, error) { return subOp.apply(x, y) }

func Mul(x, y any) (any, error) { return mulOp.apply(x, y) }

// IntDiv is truncated integer division. It is only defined for integers.
func IntDiv(x, y any) (any, error) { return intDivOp.apply(x, y) }

// Mod is the remainder of IntDiv and takes the sign of the dividend.
func Mod(x, y any) (any, error) { return modOp.apply(x, y) }

// RatDiv divides integers and rationals exactly and returns a Rational.
func RatDiv(x, y any) (any, error) { return ratDivOp.apply(x, y) }

// Div divides two integers as reals, rationals exactly, and reals and complex values following
// IEEE-754, so that a real divided by zero is ±Inf or NaN.
func Div(x, y any) (any, error) { return divOp.apply(x, y) }

func Pow(x, y any) (any, error) { return powOp.apply(x, y) }

var notOp = unaryOp{
	name:    "!",
	boolean: ok1(func(a bool) any { return !a }),
}

var plusOp = unaryOp{
	name:     "+x",
	integer:  ok1(func(a int64) any { return a }),
	rational: ok1(func(a Rational) any { return a }),
	real:     ok1(func(a float64) any { return a }),
	complex:  ok1(func(a complex128) any { return a }),
}

var negateOp = unaryOp{
	name:     "-x",
	integer:  ok1(func(a int64) any { return -a }),
	rational: func(a Rational) (any, error) { return rat(a.Neg()) },
	real:     ok1(func(a float64) any { return -a }),
	complex:  ok1(func(a complex128) any { return -a }),
}

// Not is only defined for booleans.
func Not(x any) (bool, error) {
	v, err := notOp.apply(x)
	if err != nil {
		return false, err
	}
	return v.(bool), nil
}

// Plus unwraps a numeric value. A boolean becomes the integer 0 or 1.
func Plus(x any) (any, error) { return plusOp.apply(x) }

func Negate(x any) (any, error) { return negateOp.apply(x) }
