package mtypes

import (
	"fmt"

	"github.com/abstratium-informatique-sarl/mtypes/pkg/datastructures"
)

// Mutable is implemented by the five boxes.
type Mutable interface {
	Kind() Kind
	// Plain returns the held value as bool, int64, Rational, float64 or complex128.
	Plain() any
	fmt.Stringer
}

// MBool is a mutable bool.
type MBool struct {
	datastructures.Mut[bool]
}

// MInteger is a mutable int64.
type MInteger struct {
	datastructures.Mut[int64]
}

// MRational is a mutable Rational.
type MRational struct {
	datastructures.Mut[Rational]
}

// MReal is a mutable float64.
type MReal struct {
	datastructures.Mut[float64]
}

// MComplex is a mutable complex128.
type MComplex struct {
	datastructures.Mut[complex128]
}

func NewMBool(v bool) *MBool {
	b := &MBool{}
	b.Set(v)
	return b
}

func NewMInteger(v int64) *MInteger {
	b := &MInteger{}
	b.Set(v)
	return b
}

func NewMRational(v Rational) *MRational {
	b := &MRational{}
	b.Set(v)
	return b
}

// Get returns the held value, 0//1 for a zero box.
func (b *MRational) Get() Rational {
	return b.Mut.Get().normalized()
}

func (b *MRational) Set(v Rational) {
	b.Mut.Set(v.normalized())
}

func NewMReal(v float64) *MReal {
	b := &MReal{}
	b.Set(v)
	return b
}

func NewMComplex(v complex128) *MComplex {
	b := &MComplex{}
	b.Set(v)
	return b
}

// Box wraps a plain value in the box of its kind. Boxes are copied, so Box never aliases its
// argument.
func Box(v any) (Mutable, error) {
	o, err := operandOf(v)
	if err != nil {
		return nil, err
	}
	switch o.kind {
	case KindBool:
		return NewMBool(o.b), nil
	case KindInteger:
		return NewMInteger(o.i), nil
	case KindRational:
		return NewMRational(o.r), nil
	case KindReal:
		return NewMReal(o.f), nil
	}
	return NewMComplex(o.c), nil
}

func (*MBool) Kind() Kind     { return KindBool }
func (*MInteger) Kind() Kind  { return KindInteger }
func (*MRational) Kind() Kind { return KindRational }
func (*MReal) Kind() Kind     { return KindReal }
func (*MComplex) Kind() Kind  { return KindComplex }

func (b *MBool) Plain() any     { return b.Get() }
func (b *MInteger) Plain() any  { return b.Get() }
func (b *MRational) Plain() any { return b.Get() }
func (b *MReal) Plain() any     { return b.Get() }
func (b *MComplex) Plain() any  { return b.Get() }

// the held values are flat, so a shallow copy is already independent and DeepCopy is Copy.

func (b *MBool) Copy() *MBool         { return &MBool{*b.Clone()} }
func (b *MInteger) Copy() *MInteger   { return &MInteger{*b.Clone()} }
func (b *MRational) Copy() *MRational { return &MRational{*b.Clone()} }
func (b *MReal) Copy() *MReal         { return &MReal{*b.Clone()} }
func (b *MComplex) Copy() *MComplex   { return &MComplex{*b.Clone()} }

func (b *MBool) DeepCopy() *MBool         { return b.Copy() }
func (b *MInteger) DeepCopy() *MInteger   { return b.Copy() }
func (b *MRational) DeepCopy() *MRational { return b.Copy() }
func (b *MReal) DeepCopy() *MReal         { return b.Copy() }
func (b *MComplex) DeepCopy() *MComplex   { return b.Copy() }

func (b *MBool) String() string     { return mustString(b) }
func (b *MInteger) String() string  { return mustString(b) }
func (b *MRational) String() string { return mustString(b) }
func (b *MReal) String() string     { return mustString(b) }
func (b *MComplex) String() string  { return mustString(b) }

// formatting with the default options cannot fail
func mustString(b Mutable) string {
	s, err := ToString(b)
	if err != nil {
		return fmt.Sprintf("%%!(%v)", err)
	}
	return s
}

// Unwrap returns the plain value of a box, or the canonical plain value of v: bool, int64,
// Rational, float64 or complex128.
func Unwrap(v any) (any, error) {
	o, err := operandOf(v)
	if err != nil {
		return nil, err
	}
	return o.plain(), nil
}

// KindOf returns the kind of a box or plain value.
func KindOf(v any) (Kind, error) {
	o, err := operandOf(v)
	if err != nil {
		return 0, err
	}
	return o.kind, nil
}

var _ Mutable = (*MBool)(nil)
var _ Mutable = (*MInteger)(nil)
var _ Mutable = (*MRational)(nil)
var _ Mutable = (*MReal)(nil)
var _ Mutable = (*MComplex)(nil)
