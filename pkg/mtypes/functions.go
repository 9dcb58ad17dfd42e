package mtypes

import (
	"math"
	"math/cmplx"
)

// Forwarded math functions. Integers and rationals are promoted to real for the transcendental
// functions; complex arguments use math/cmplx. Real arguments outside a function's domain give
// NaN, as the math package does.

var absOp = unaryOp{
	name: "abs",
	integer: ok1(func(a int64) any {
		if a < 0 {
			return -a
		}
		return a
	}),
	rational: func(a Rational) (any, error) { return rat(a.Abs()) },
	real:     real1(math.Abs),
	complex:  ok1(func(a complex128) any { return cmplx.Abs(a) }),
}

var abs2Op = unaryOp{
	name:     "abs2",
	integer:  ok1(func(a int64) any { return a * a }),
	rational: func(a Rational) (any, error) { return rat(a.Mul(a)) },
	real:     real1(func(a float64) float64 { return a * a }),
	complex:  ok1(func(a complex128) any { return real(a)*real(a) + imag(a)*imag(a) }),
}

var signOp = unaryOp{
	name: "sign",
	integer: ok1(func(a int64) any {
		switch {
		case a < 0:
			return int64(-1)
		case a > 0:
			return int64(1)
		}
		return int64(0)
	}),
	rational: ok1(func(a Rational) any { return RationalFromInt(int64(a.Sign())) }),
	real: real1(func(a float64) float64 {
		if a == 0 || math.IsNaN(a) {
			return a // keeps the sign of zero
		}
		return math.Copysign(1, a)
	}),
}

var numeratorOp = unaryOp{
	name:     "numerator",
	integer:  ok1(func(a int64) any { return a }),
	rational: ok1(func(a Rational) any { return a.Num() }),
}

var denominatorOp = unaryOp{
	name:     "denominator",
	integer:  ok1(func(int64) any { return int64(1) }),
	rational: ok1(func(a Rational) any { return a.Den() }),
}

func roundingOp(name string, r func(Rational) Rational, f func(float64) float64) unaryOp {
	return unaryOp{
		name:     name,
		integer:  ok1(func(a int64) any { return a }),
		rational: ok1(func(a Rational) any { return r(a) }),
		real:     real1(f),
	}
}

var (
	roundOp = roundingOp("round", Rational.Round, math.RoundToEven)
	ceilOp  = roundingOp("ceil", Rational.Ceil, math.Ceil)
	floorOp = roundingOp("floor", Rational.Floor, math.Floor)
)

var cbrtOp = unaryOp{name: "cbrt", real: real1(math.Cbrt)}

var atan2Op = binaryOp{
	name: "atan2",
	real: func(y, x float64) (any, error) { return math.Atan2(y, x), nil },
}

var realOp = unaryOp{
	name:     "real",
	integer:  ok1(func(a int64) any { return a }),
	rational: ok1(func(a Rational) any { return a }),
	real:     real1(func(a float64) float64 { return a }),
	complex:  ok1(func(a complex128) any { return real(a) }),
}

var imagOp = unaryOp{
	name:     "imag",
	integer:  ok1(func(int64) any { return int64(0) }),
	rational: ok1(func(Rational) any { return RationalFromInt(0) }),
	real:     real1(func(float64) float64 { return 0 }),
	complex:  ok1(func(a complex128) any { return imag(a) }),
}

var conjOp = unaryOp{
	name:     "conj",
	integer:  ok1(func(a int64) any { return a }),
	rational: ok1(func(a Rational) any { return a }),
	real:     real1(func(a float64) float64 { return a }),
	complex:  complex1(cmplx.Conj),
}

var angleOp = unaryOp{
	name:    "angle",
	real:    real1(func(a float64) float64 { return math.Atan2(0, a) }),
	complex: ok1(func(a complex128) any { return cmplx.Phase(a) }),
}

func transcendental(name string, f func(float64) float64, c func(complex128) complex128) unaryOp {
	return unaryOp{name: name, real: real1(f), complex: complex1(c)}
}

var (
	ln2  = complex(math.Ln2, 0)
	ln10 = complex(math.Ln10, 0)
)

var (
	sqrtOp  = transcendental("sqrt", math.Sqrt, cmplx.Sqrt)
	sinOp   = transcendental("sin", math.Sin, cmplx.Sin)
	cosOp   = transcendental("cos", math.Cos, cmplx.Cos)
	tanOp   = transcendental("tan", math.Tan, cmplx.Tan)
	sinhOp  = transcendental("sinh", math.Sinh, cmplx.Sinh)
	coshOp  = transcendental("cosh", math.Cosh, cmplx.Cosh)
	tanhOp  = transcendental("tanh", math.Tanh, cmplx.Tanh)
	asinOp  = transcendental("asin", math.Asin, cmplx.Asin)
	acosOp  = transcendental("acos", math.Acos, cmplx.Acos)
	atanOp  = transcendental("atan", math.Atan, cmplx.Atan)
	asinhOp = transcendental("asinh", math.Asinh, cmplx.Asinh)
	acoshOp = transcendental("acosh", math.Acosh, cmplx.Acosh)
	atanhOp = transcendental("atanh", math.Atanh, cmplx.Atanh)
	logOp   = transcendental("log", math.Log, cmplx.Log)
	log2Op  = transcendental("log2", math.Log2, func(z complex128) complex128 { return cmplx.Log(z) / ln2 })
	log10Op = transcendental("log10", math.Log10, cmplx.Log10)
	expOp   = transcendental("exp", math.Exp, cmplx.Exp)
	exp2Op  = transcendental("exp2", math.Exp2, func(z complex128) complex128 { return cmplx.Exp(z * ln2) })
	exp10Op = transcendental("exp10", func(x float64) float64 { return math.Pow(10, x) },
		func(z complex128) complex128 { return cmplx.Exp(z * ln10) })
)

// Abs is the absolute value. For a complex argument it is the real magnitude.
func Abs(x any) (any, error) { return absOp.apply(x) }

// Abs2 is the squared absolute value, computed without a square root.
func Abs2(x any) (any, error) { return abs2Op.apply(x) }

// Sign returns -1, 0 or 1 in the kind of x. Complex arguments are a type mismatch.
func Sign(x any) (any, error) { return signOp.apply(x) }

// Numerator is x itself for integers.
func Numerator(x any) (int64, error) { return int64Of(numeratorOp.apply(x)) }

// Denominator is 1 for integers.
func Denominator(x any) (int64, error) { return int64Of(denominatorOp.apply(x)) }

// Round rounds half to even and keeps the kind of x.
func Round(x any) (any, error) { return roundOp.apply(x) }

func Ceil(x any) (any, error) { return ceilOp.apply(x) }

func Floor(x any) (any, error) { return floorOp.apply(x) }

func Cbrt(x any) (any, error) { return cbrtOp.apply(x) }

// Atan2 is the angle of the point (x, y), i.e. the inverse tangent of y/x in the right quadrant.
func Atan2(y, x any) (any, error) { return atan2Op.apply(y, x) }

func Real(x any) (any, error) { return realOp.apply(x) }

func Imag(x any) (any, error) { return imagOp.apply(x) }

func Conj(x any) (any, error) { return conjOp.apply(x) }

// Angle is the phase in radians; 0 or π for non-complex values.
func Angle(x any) (any, error) { return angleOp.apply(x) }

func Sqrt(x any) (any, error)  { return sqrtOp.apply(x) }
func Sin(x any) (any, error)   { return sinOp.apply(x) }
func Cos(x any) (any, error)   { return cosOp.apply(x) }
func Tan(x any) (any, error)   { return tanOp.apply(x) }
func Sinh(x any) (any, error)  { return sinhOp.apply(x) }
func Cosh(x any) (any, error)  { return coshOp.apply(x) }
func Tanh(x any) (any, error)  { return tanhOp.apply(x) }
func Asin(x any) (any, error)  { return asinOp.apply(x) }
func Acos(x any) (any, error)  { return acosOp.apply(x) }
func Atan(x any) (any, error)  { return atanOp.apply(x) }
func Asinh(x any) (any, error) { return asinhOp.apply(x) }
func Acosh(x any) (any, error) { return acoshOp.apply(x) }
func Atanh(x any) (any, error) { return atanhOp.apply(x) }
func Log(x any) (any, error)   { return logOp.apply(x) }
func Log2(x any) (any, error)  { return log2Op.apply(x) }
func Log10(x any) (any, error) { return log10Op.apply(x) }
func Exp(x any) (any, error)   { return expOp.apply(x) }
func Exp2(x any) (any, error)  { return exp2Op.apply(x) }
func Exp10(x any) (any, error) { return exp10Op.apply(x) }

func int64Of(v any, err error) (int64, error) {
	if err != nil {
		return 0, err
	}
	return v.(int64), nil
}
