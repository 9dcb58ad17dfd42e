package mtypes

import (
	"fmt"
	"math"
	"math/big"
)

// operand is the tagged variant every operator works on. Only the field selected by kind is
// meaningful.
type operand struct {
	kind Kind
	b    bool
	i    int64
	r    Rational
	f    float64
	c    complex128
}

func boolOperand(b bool) operand          { return operand{kind: KindBool, b: b} }
func intOperand(i int64) operand          { return operand{kind: KindInteger, i: i} }
func ratOperand(r Rational) operand       { return operand{kind: KindRational, r: r.normalized()} }
func realOperand(f float64) operand       { return operand{kind: KindReal, f: f} }
func complexOperand(c complex128) operand { return operand{kind: KindComplex, c: c} }

// normalized gives the zero value an explicit denominator, so results compare equal to values
// built by NewRational.
func (r Rational) normalized() Rational {
	return Rational{num: r.num, den: r.Den()}
}

// operandOf unwraps a box or classifies a plain value.
func operandOf(v any) (operand, error) {
	switch x := v.(type) {
	case *MBool:
		if x != nil {
			return boolOperand(x.Get()), nil
		}
	case *MInteger:
		if x != nil {
			return intOperand(x.Get()), nil
		}
	case *MRational:
		if x != nil {
			return ratOperand(x.Get()), nil
		}
	case *MReal:
		if x != nil {
			return realOperand(x.Get()), nil
		}
	case *MComplex:
		if x != nil {
			return complexOperand(x.Get()), nil
		}
	case bool:
		return boolOperand(x), nil
	case int:
		return intOperand(int64(x)), nil
	case int8:
		return intOperand(int64(x)), nil
	case int16:
		return intOperand(int64(x)), nil
	case int32:
		return intOperand(int64(x)), nil
	case int64:
		return intOperand(x), nil
	case uint8:
		return intOperand(int64(x)), nil
	case uint16:
		return intOperand(int64(x)), nil
	case uint32:
		return intOperand(int64(x)), nil
	case uint:
		if uint64(x) <= math.MaxInt64 {
			return intOperand(int64(x)), nil
		}
		return operand{}, fmt.Errorf("%w: %d does not fit int64", ErrOverflow, x)
	case uint64:
		if x <= math.MaxInt64 {
			return intOperand(int64(x)), nil
		}
		return operand{}, fmt.Errorf("%w: %d does not fit int64", ErrOverflow, x)
	case Rational:
		return ratOperand(x), nil
	case *big.Rat:
		if x != nil {
			r, err := fromBig(x)
			if err != nil {
				return operand{}, err
			}
			return ratOperand(r), nil
		}
	case float32:
		return realOperand(float64(x)), nil
	case float64:
		return realOperand(x), nil
	case complex64:
		return complexOperand(complex128(x)), nil
	case complex128:
		return complexOperand(x), nil
	case Mutable:
		// a type embedding one of the boxes
		return operandOf(x.Plain())
	}
	return operand{}, fmt.Errorf("%w: %T is not a supported value", ErrTypeMismatch, v)
}

// to promotes o to kind k, which must not be lower than o.kind.
func (o operand) to(k Kind) operand {
	for o.kind < k {
		switch o.kind {
		case KindBool:
			var i int64
			if o.b {
				i = 1
			}
			o = intOperand(i)
		case KindInteger:
			o = ratOperand(RationalFromInt(o.i))
		case KindRational:
			o = realOperand(o.r.Float64())
		case KindReal:
			o = complexOperand(complex(o.f, 0))
		}
	}
	return o
}

func (o operand) plain() any {
	switch o.kind {
	case KindBool:
		return o.b
	case KindInteger:
		return o.i
	case KindRational:
		return o.r
	case KindReal:
		return o.f
	}
	return o.c
}

// realPart and imagPart split any operand into the parts of its complex value. For non-complex
// operands the real part keeps its kind, so it can still be compared exactly.
func (o operand) realPart() operand {
	if o.kind == KindComplex {
		return realOperand(real(o.c))
	}
	return o
}

func (o operand) imagPart() operand {
	if o.kind == KindComplex {
		return realOperand(imag(o.c))
	}
	return intOperand(0)
}

// exact returns the exact value of a finite non-complex operand.
func (o operand) exact() *big.Rat {
	switch o.kind {
	case KindBool, KindInteger:
		return new(big.Rat).SetInt64(o.to(KindInteger).i)
	case KindRational:
		return o.r.Rat()
	}
	return new(big.Rat).SetFloat64(o.f) // callers rule out NaN and Inf
}

// realCmp orders two non-complex operands exactly, without rounding integers or rationals to
// float64. ok is false when either side is NaN.
func realCmp(a, b operand) (c int, ok bool) {
	if a.kind != KindReal && b.kind != KindReal {
		return a.exact().Cmp(b.exact()), true
	}
	fa, fb := a.to(KindReal).f, b.to(KindReal).f
	if math.IsNaN(fa) || math.IsNaN(fb) {
		return 0, false
	}
	if math.IsInf(fa, 0) || math.IsInf(fb, 0) || (a.kind == KindReal && b.kind == KindReal) {
		switch {
		case fa < fb:
			return -1, true
		case fa > fb:
			return 1, true
		}
		return 0, true
	}
	return a.exact().Cmp(b.exact()), true
}
