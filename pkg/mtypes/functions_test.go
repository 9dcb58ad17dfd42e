package mtypes

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAbs(t *testing.T) {
	tests := []struct {
		name string
		x    any
		want any
	}{
		{"integer", -3, int64(3)},
		{"rational", R(-1, 2), R(1, 2)},
		{"real", NewMReal(-2.5), 2.5},
		{"complex is a magnitude", 3 + 4i, 5.0},
		{"bool", true, int64(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert := assert.New(t)
			got, err := Abs(tt.x)
			assert.NoError(err)
			assert.Equal(tt.want, got)
		})
	}
}

func TestAbs2(t *testing.T) {
	assert := assert.New(t)

	v, err := Abs2(3 + 4i)
	assert.NoError(err)
	assert.Equal(25.0, v)

	v, err = Abs2(R(-2, 3))
	assert.NoError(err)
	assert.Equal(R(4, 9), v)

	v, err = Abs2(-3)
	assert.NoError(err)
	assert.Equal(int64(9), v)
}

func TestSign(t *testing.T) {
	assert := assert.New(t)

	v, err := Sign(-7)
	assert.NoError(err)
	assert.Equal(int64(-1), v)

	v, err = Sign(R(1, 9))
	assert.NoError(err)
	assert.Equal(RationalFromInt(1), v)

	v, err = Sign(-0.5)
	assert.NoError(err)
	assert.Equal(-1.0, v)

	v, err = Sign(0.0)
	assert.NoError(err)
	assert.Equal(0.0, v)

	_, err = Sign(1i)
	assert.ErrorIs(err, ErrTypeMismatch)
}

func TestRounding_keepsKind(t *testing.T) {
	tests := []struct {
		name               string
		x                  any
		round, ceil, floor any
	}{
		{"integer", 5, int64(5), int64(5), int64(5)},
		{"rational", R(5, 2), RationalFromInt(2), RationalFromInt(3), RationalFromInt(2)},
		{"negative rational", R(-7, 3), RationalFromInt(-2), RationalFromInt(-2), RationalFromInt(-3)},
		{"real tie to even", 2.5, 2.0, 3.0, 2.0},
		{"real", -1.25, -1.0, -1.0, -2.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert := assert.New(t)
			v, err := Round(tt.x)
			assert.NoError(err)
			assert.Equal(tt.round, v)

			v, err = Ceil(tt.x)
			assert.NoError(err)
			assert.Equal(tt.ceil, v)

			v, err = Floor(tt.x)
			assert.NoError(err)
			assert.Equal(tt.floor, v)
		})
	}
}

func TestRounding_complexIsMismatch(t *testing.T) {
	assert := assert.New(t)
	_, err := Round(1i)
	assert.ErrorIs(err, ErrTypeMismatch)
	_, err = Floor(NewMComplex(1))
	assert.ErrorIs(err, ErrTypeMismatch)
}

func TestNumeratorDenominator(t *testing.T) {
	assert := assert.New(t)

	n, err := Numerator(R(6, 4))
	assert.NoError(err)
	assert.Equal(int64(3), n)

	d, err := Denominator(NewMRational(R(6, 4)))
	assert.NoError(err)
	assert.Equal(int64(2), d)

	d, err = Denominator(7)
	assert.NoError(err)
	assert.Equal(int64(1), d)

	_, err = Numerator(0.5)
	assert.ErrorIs(err, ErrTypeMismatch)
}

func TestCbrtAtan2(t *testing.T) {
	assert := assert.New(t)

	v, err := Cbrt(-27)
	assert.NoError(err)
	assert.InDelta(-3.0, v.(float64), 1e-15)

	v, err = Atan2(1, 1)
	assert.NoError(err)
	assert.InDelta(math.Pi/4, v.(float64), 1e-15)

	_, err = Cbrt(1i)
	assert.ErrorIs(err, ErrTypeMismatch)

	_, err = Atan2(1i, 1)
	assert.ErrorIs(err, ErrTypeMismatch)
}

func TestComplexAccessors(t *testing.T) {
	assert := assert.New(t)
	z := NewMComplex(3 - 4i)

	v, err := Real(z)
	assert.NoError(err)
	assert.Equal(3.0, v)

	v, err = Imag(z)
	assert.NoError(err)
	assert.Equal(-4.0, v)

	v, err = Conj(z)
	assert.NoError(err)
	assert.Equal(3+4i, v)

	v, err = Angle(1i)
	assert.NoError(err)
	assert.InDelta(math.Pi/2, v.(float64), 1e-15)

	// defined for real kinds too
	v, err = Real(R(1, 2))
	assert.NoError(err)
	assert.Equal(R(1, 2), v)

	v, err = Imag(5)
	assert.NoError(err)
	assert.Equal(int64(0), v)

	v, err = Conj(2.5)
	assert.NoError(err)
	assert.Equal(2.5, v)

	v, err = Angle(-2)
	assert.NoError(err)
	assert.Equal(math.Pi, v)

	v, err = Angle(2)
	assert.NoError(err)
	assert.Equal(0.0, v)
}

func TestTranscendental_realArguments(t *testing.T) {
	tests := []struct {
		name string
		f    func(any) (any, error)
		x    any
		want float64
	}{
		{"sqrt", Sqrt, 16, 4},
		{"sin", Sin, 0, 0},
		{"cos", Cos, 0, 1},
		{"tan", Tan, R(0, 1), 0},
		{"sinh", Sinh, 0, 0},
		{"cosh", Cosh, 0, 1},
		{"tanh", Tanh, 0, 0},
		{"asin", Asin, 1, math.Pi / 2},
		{"acos", Acos, 1, 0},
		{"atan", Atan, 1, math.Pi / 4},
		{"asinh", Asinh, 0, 0},
		{"acosh", Acosh, 1, 0},
		{"atanh", Atanh, 0, 0},
		{"log", Log, math.E, 1},
		{"log2", Log2, 8, 3},
		{"log10", Log10, R(1000, 1), 3},
		{"exp", Exp, 0, 1},
		{"exp2", Exp2, 10, 1024},
		{"exp10", Exp10, 3, 1000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert := assert.New(t)
			got, err := tt.f(tt.x)
			assert.NoError(err)
			assert.IsType(0.0, got)
			assert.InDelta(tt.want, got.(float64), 1e-12)
		})
	}
}

func TestTranscendental_complexArguments(t *testing.T) {
	tests := []struct {
		name string
		f    func(any) (any, error)
		x    complex128
		want complex128
	}{
		{"sqrt", Sqrt, -4, 2i},
		{"exp", Exp, complex(0, math.Pi), -1},
		{"log", Log, -1, complex(0, math.Pi)},
		{"log2", Log2, 8, 3},
		{"log10", Log10, 100, 2},
		{"exp2", Exp2, 10, 1024},
		{"exp10", Exp10, 2, 100},
		{"sin", Sin, 1i, complex(0, math.Sinh(1))},
		{"cosh", Cosh, 1i, complex(math.Cos(1), 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert := assert.New(t)
			got, err := tt.f(tt.x)
			assert.NoError(err)
			assert.IsType(complex128(0), got)
			assert.InDelta(0, cmplx.Abs(tt.want-got.(complex128)), 1e-9)
		})
	}
}

func TestTranscendental_domainErrorsGiveNaN(t *testing.T) {
	assert := assert.New(t)

	v, err := Sqrt(-1)
	assert.NoError(err)
	assert.True(math.IsNaN(v.(float64)))

	v, err = Log(-1.0)
	assert.NoError(err)
	assert.True(math.IsNaN(v.(float64)))

	v, err = Asin(2)
	assert.NoError(err)
	assert.True(math.IsNaN(v.(float64)))
}

func TestFunctions_promoteBooleans(t *testing.T) {
	assert := assert.New(t)

	// booleans climb to integer, then to real
	v, err := Exp(false)
	assert.NoError(err)
	assert.Equal(1.0, v)

	_, err = Sqrt("4")
	assert.ErrorIs(err, ErrTypeMismatch)
}
