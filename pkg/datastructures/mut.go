package datastructures

// a single mutable cell, using generics. it is meant to be embedded in a struct that is otherwise
// treated as immutable, so the cell's content can change while the struct keeps its identity.
// there is no locking: callers sharing a cell across goroutines synchronise around it.
//
// the zero value holds the zero value of T.
type Mut[T any] struct {
	value T
}

func NewMut[T any](value T) *Mut[T] {
	return &Mut[T]{
		value: value,
	}
}

func (m *Mut[T]) Get() T {
	return m.value
}

// replaces the held value with a single assignment
func (m *Mut[T]) Set(value T) {
	m.value = value
}

// a new cell holding a copy of the value. for flat value types (numbers, bools, structs without
// pointers) the clone is fully independent of m.
func (m *Mut[T]) Clone() *Mut[T] {
	return NewMut(m.value)
}
