package mtypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector_Add(t *testing.T) {
	assert := assert.New(t)
	v := NewVector()
	assert.NoError(v.Add(1))
	assert.NoError(v.Add(R(1, 2)))
	assert.NoError(v.Add(NewMReal(2.5)))
	assert.Equal(3, v.Len())

	assert.ErrorIs(v.Add("3"), ErrTypeMismatch)
	assert.Equal(3, v.Len())
}

func TestVector_AddAllIsAllOrNothing(t *testing.T) {
	assert := assert.New(t)
	v := NewVector()

	err := v.AddAll(1, 2, []int{3})
	assert.ErrorIs(err, ErrTypeMismatch)
	assert.Equal(0, v.Len())

	assert.NoError(v.AddAll(1, 2, 3))
	assert.Equal([]any{1, 2, 3}, v.Items())

	_, err = NewVectorFrom(1, nil)
	assert.ErrorIs(err, ErrTypeMismatch)
}

func TestVector_GetSet(t *testing.T) {
	assert := assert.New(t)
	v, err := NewVectorFrom(1, 2, 3)
	assert.NoError(err)

	assert.Equal(2, v.Get(1))
	assert.NoError(v.Set(1, 1i))
	assert.Equal(1i, v.Get(1))
	assert.ErrorIs(v.Set(0, "x"), ErrTypeMismatch)
	assert.Equal(1, v.Get(0))
}

func TestVector_holdsBoxesByReference(t *testing.T) {
	assert := assert.New(t)
	x := NewMInteger(1)
	v, err := NewVectorFrom(x, 10)
	assert.NoError(err)

	x.Set(5)

	sum, err := v.Sum()
	assert.NoError(err)
	assert.Equal(int64(15), sum)
}

func TestVector_ClearAndItems(t *testing.T) {
	assert := assert.New(t)
	v, _ := NewVectorFrom(1, 2, 3)

	items := v.Items()
	items[0] = 99
	assert.Equal(1, v.Get(0))

	v.Clear()
	assert.Equal(0, v.Len())
	assert.Equal([]any{}, v.Items())
}

func TestVector_FilterHead(t *testing.T) {
	assert := assert.New(t)
	v, _ := NewVectorFrom(1, 2.5, R(1, 2), 4)

	integers := v.Filter(func(value any) bool {
		k, _ := KindOf(value)
		return k == KindInteger
	})
	assert.Equal([]any{1, 4}, integers.Items())
	assert.Equal(4, v.Len())

	assert.Equal([]any{1, 2.5}, v.Head(2).Items())
	assert.Equal(4, v.Head(10).Len())
	assert.Equal(0, v.Head(-1).Len())
}

func TestVector_Sort(t *testing.T) {
	assert := assert.New(t)
	v, _ := NewVectorFrom(3, R(1, 2), -1.5, true, R(1, 1))

	assert.NoError(v.Sort())
	// true and 1//1 are equal and keep their order
	assert.Equal([]any{-1.5, R(1, 2), true, R(1, 1), 3}, v.Items())

	c, _ := NewVectorFrom(2, 1i, 1)
	assert.ErrorIs(c.Sort(), ErrTypeMismatch)
	assert.Equal([]any{2, 1i, 1}, c.Items())
}

func TestVector_Sum(t *testing.T) {
	assert := assert.New(t)

	empty := NewVector()
	sum, err := empty.Sum()
	assert.NoError(err)
	assert.Equal(int64(0), sum)

	v, _ := NewVectorFrom(1, R(1, 2), R(1, 2))
	sum, err = v.Sum()
	assert.NoError(err)
	assert.Equal(R(2, 1), sum)

	assert.NoError(v.Add(0.5))
	sum, err = v.Sum()
	assert.NoError(err)
	assert.Equal(2.5, sum)
}

func TestVector_Strings(t *testing.T) {
	assert := assert.New(t)
	v, _ := NewVectorFrom(1, -20, R(1, 3), true)

	s, err := v.Strings(Aligned(true))
	assert.NoError(err)
	assert.Equal([]string{"    1", "  -20", " 1//3", " true"}, s)

	_, err = v.Strings(Precision(1))
	assert.ErrorIs(err, ErrInvalidArgument)

	s, err = NewVector().Strings()
	assert.NoError(err)
	assert.Empty(s)
}
