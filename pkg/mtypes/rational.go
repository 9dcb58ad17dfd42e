package mtypes

import (
	"fmt"
	"math/big"
)

// Rational is an exact fraction of two int64s, always normalized: the denominator is positive and
// the fraction is reduced. Arithmetic is exact and fails with ErrOverflow rather than wrapping.
//
// The zero value is 0//1.
type Rational struct {
	num int64
	den int64 // 0 only in the zero value
}

// NewRational returns num//den in lowest terms.
func NewRational(num, den int64) (Rational, error) {
	if den == 0 {
		return Rational{}, fmt.Errorf("%w: %d//0", ErrDivideByZero, num)
	}
	return fromBig(new(big.Rat).SetFrac64(num, den))
}

// R is NewRational for literals known to be valid. It panics otherwise.
func R(num, den int64) Rational {
	r, err := NewRational(num, den)
	if err != nil {
		panic(err)
	}
	return r
}

// RationalFromInt returns i//1.
func RationalFromInt(i int64) Rational {
	return Rational{num: i, den: 1}
}

// RationalFromBig converts x when both of its parts fit in an int64.
func RationalFromBig(x *big.Rat) (Rational, error) {
	if x == nil {
		return Rational{}, fmt.Errorf("%w: nil *big.Rat", ErrInvalidArgument)
	}
	return fromBig(x)
}

func fromBig(x *big.Rat) (Rational, error) {
	if !x.Num().IsInt64() || !x.Denom().IsInt64() {
		return Rational{}, fmt.Errorf("%w: %s does not fit int64//int64", ErrOverflow, x.String())
	}
	return Rational{num: x.Num().Int64(), den: x.Denom().Int64()}, nil
}

func (r Rational) Num() int64 {
	return r.num
}

func (r Rational) Den() int64 {
	if r.den == 0 {
		return 1
	}
	return r.den
}

func (r Rational) IsInt() bool {
	return r.Den() == 1
}

func (r Rational) Sign() int {
	switch {
	case r.num < 0:
		return -1
	case r.num > 0:
		return 1
	}
	return 0
}

// Rat returns a new *big.Rat with the same value.
func (r Rational) Rat() *big.Rat {
	return new(big.Rat).SetFrac64(r.num, r.Den())
}

// Float64 is the nearest float64, num and den divided in floating point.
func (r Rational) Float64() float64 {
	return float64(r.num) / float64(r.Den())
}

func (r Rational) String() string {
	return fmt.Sprintf("%d//%d", r.num, r.Den())
}

func (r Rational) Equal(o Rational) bool {
	return r.num == o.num && r.Den() == o.Den()
}

func (r Rational) Cmp(o Rational) int {
	return r.Rat().Cmp(o.Rat())
}

func (r Rational) Add(o Rational) (Rational, error) {
	return fromBig(new(big.Rat).Add(r.Rat(), o.Rat()))
}

func (r Rational) Sub(o Rational) (Rational, error) {
	return fromBig(new(big.Rat).Sub(r.Rat(), o.Rat()))
}

func (r Rational) Mul(o Rational) (Rational, error) {
	return fromBig(new(big.Rat).Mul(r.Rat(), o.Rat()))
}

func (r Rational) Quo(o Rational) (Rational, error) {
	if o.num == 0 {
		return Rational{}, fmt.Errorf("%w: %s divided by %s", ErrDivideByZero, r, o)
	}
	return fromBig(new(big.Rat).Quo(r.Rat(), o.Rat()))
}

func (r Rational) Neg() (Rational, error) {
	return fromBig(new(big.Rat).Neg(r.Rat()))
}

func (r Rational) Abs() (Rational, error) {
	return fromBig(new(big.Rat).Abs(r.Rat()))
}

// Pow raises r to an integer power. A negative power of zero is ErrDivideByZero.
func (r Rational) Pow(n int64) (Rational, error) {
	if n < 0 {
		if r.num == 0 {
			return Rational{}, fmt.Errorf("%w: %s to the power %d", ErrDivideByZero, r, n)
		}
		inv, err := NewRational(r.Den(), r.num)
		if err != nil {
			return Rational{}, err
		}
		if n == -n { // math.MinInt64
			return Rational{}, fmt.Errorf("%w: %s to the power %d", ErrOverflow, r, n)
		}
		return inv.Pow(-n)
	}
	if n == 0 {
		return RationalFromInt(1), nil
	}
	if r.IsInt() && (r.num == 0 || r.num == 1) {
		return r, nil
	}
	if r.IsInt() && r.num == -1 {
		if n%2 == 0 {
			return RationalFromInt(1), nil
		}
		return r, nil
	}
	// any other base has a part of magnitude >= 2, and 2^64 leaves int64
	if n > 63 {
		return Rational{}, fmt.Errorf("%w: %s to the power %d", ErrOverflow, r, n)
	}
	e := big.NewInt(n)
	num := new(big.Int).Exp(big.NewInt(r.num), e, nil)
	den := new(big.Int).Exp(big.NewInt(r.Den()), e, nil)
	return fromBig(new(big.Rat).SetFrac(num, den))
}

// Floor is the greatest integer not above r.
func (r Rational) Floor() Rational {
	q := new(big.Int).Div(big.NewInt(r.num), big.NewInt(r.Den())) // Euclidean, den > 0
	return RationalFromInt(q.Int64())
}

// Ceil is the least integer not below r.
func (r Rational) Ceil() Rational {
	f := r.Floor()
	if r.IsInt() {
		return f
	}
	return RationalFromInt(f.num + 1)
}

// Round rounds to the nearest integer, ties to even.
func (r Rational) Round() Rational {
	if r.IsInt() {
		return r
	}
	num, den := big.NewInt(r.num), big.NewInt(r.Den())
	q, m := new(big.Int).DivMod(num, den, new(big.Int)) // 0 <= m < den
	twice := new(big.Int).Lsh(m, 1)
	switch c := twice.Cmp(den); {
	case c > 0, c == 0 && q.Bit(0) == 1:
		q.Add(q, big.NewInt(1))
	}
	return RationalFromInt(q.Int64())
}
