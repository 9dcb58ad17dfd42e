package mtypes

import (
	"fmt"
	"slices"

	"github.com/samber/lo"
)

// Vector is an ordered list of values, boxed or plain. Values are checked when they are added, so
// every element is something the operators accept. Boxes are stored by reference: setting a box
// after adding it changes what the vector sees.
type Vector struct {
	items []any
}

func NewVector() *Vector {
	return &Vector{items: make([]any, 0, 10)}
}

// NewVectorFrom fails when one of the values is unsupported, and then holds none of them.
func NewVectorFrom(values ...any) (*Vector, error) {
	v := NewVector()
	if err := v.AddAll(values...); err != nil {
		return nil, err
	}
	return v, nil
}

func (v *Vector) Add(value any) error {
	if _, err := KindOf(value); err != nil {
		return err
	}
	v.items = append(v.items, value)
	return nil
}

// AddAll adds all values, or none when one is unsupported.
func (v *Vector) AddAll(values ...any) error {
	for _, value := range values {
		if _, err := KindOf(value); err != nil {
			return err
		}
	}
	v.items = append(v.items, values...)
	return nil
}

func (v *Vector) Get(index int) any {
	return v.items[index]
}

// Set replaces the element at index. It does not write into a box held there.
func (v *Vector) Set(index int, value any) error {
	if _, err := KindOf(value); err != nil {
		return err
	}
	v.items[index] = value
	return nil
}

func (v *Vector) Len() int {
	return len(v.items)
}

func (v *Vector) Clear() {
	v.items = make([]any, 0, 10)
}

// Items returns a copy of the element slice.
func (v *Vector) Items() []any {
	return slices.Clone(v.items)
}

func (v *Vector) Filter(f func(value any) bool) *Vector {
	return &Vector{items: lo.Filter(v.items, func(value any, _ int) bool { return f(value) })}
}

func (v *Vector) Head(n int) *Vector {
	n = max(0, min(n, len(v.items)))
	return &Vector{items: slices.Clone(v.items[:n])}
}

// Sort orders the elements ascending with Less, keeping the order of equal elements. Complex
// elements cannot be ordered and leave the vector unchanged.
func (v *Vector) Sort() error {
	for _, value := range v.items {
		if k, _ := KindOf(value); k == KindComplex {
			return fmt.Errorf("%w: complex values cannot be sorted", ErrTypeMismatch)
		}
	}
	slices.SortStableFunc(v.items, func(a, b any) int {
		if less, _ := Less(a, b); less {
			return -1
		}
		if less, _ := Less(b, a); less {
			return 1
		}
		return 0
	})
	return nil
}

// Sum adds all elements with Add. The sum of an empty vector is the integer 0.
func (v *Vector) Sum() (any, error) {
	var sum any = int64(0)
	for _, value := range v.items {
		var err error
		if sum, err = Add(sum, value); err != nil {
			return nil, err
		}
	}
	return sum, nil
}

// Strings formats every element and pads them on the left to a common width, so that printing
// them one per line gives a right-aligned column.
func (v *Vector) Strings(opts ...Option) ([]string, error) {
	formatted := make([]string, len(v.items))
	for i, value := range v.items {
		s, err := ToString(value, opts...)
		if err != nil {
			return nil, err
		}
		formatted[i] = s
	}
	width := lo.Max(lo.Map(formatted, func(s string, _ int) int { return len([]rune(s)) }))
	return lo.Map(formatted, func(s string, _ int) string { return fmt.Sprintf("%*s", width, s) }), nil
}
