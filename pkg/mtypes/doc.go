// Package mtypes provides mutable boxes for the scalar kinds bool, int64, Rational, float64 and
// complex128, so that a value can be shared by reference and updated in place.
//
// Operators and math functions accept boxes and plain values in any mix. Operands are promoted
// along Bool < Integer < Rational < Real < Complex, and results are always plain values:
//
//	x := mtypes.NewMInteger(2)
//	y, _ := mtypes.Add(x, mtypes.R(1, 2)) // Rational 5//2
//	x.Set(3)
//	s, _ := mtypes.ToString(y, mtypes.Aligned(true))
//
// Boxes do no locking.
package mtypes
