package medialib

import (
	"testing"

	"github.com/karlseguin/medialib/assert"
)

func Test_Array_StartsWithInitialCapacity(t *testing.T) {
	a := NewArray(Natural[int](), 3, 2)
	assert.Equal(t, a.Cap(), 3)
	assert.Equal(t, a.Len(), 0)

	a = NewArray(Natural[int](), 0, 0)
	assert.Equal(t, a.Cap(), 1)
	assert.Equal(t, a.growth, defaultGrowth)
}

func Test_Array_GrowsWhenFull(t *testing.T) {
	a := NewArray(Natural[int](), 3, 2)
	insertAll[int](a, 1, 2, 3)
	assert.Equal(t, a.Cap(), 3)

	a.Insert(4)
	assert.Equal(t, a.Cap(), 8)
	assert.Equal(t, a.Len(), 4)

	insertAll[int](a, 5, 6, 7, 8)
	assert.Equal(t, a.Cap(), 8)
	a.Insert(9)
	assert.Equal(t, a.Cap(), 18)
	assert.List(t, Values[int](a), []int{1, 2, 3, 4, 5, 6, 7, 8, 9})
}

func Test_Array_DuplicateDoesNotGrow(t *testing.T) {
	a := NewArray(Natural[int](), 2, 2)
	insertAll[int](a, 1, 2)
	_, added := a.Insert(2)
	assert.False(t, added)
	assert.Equal(t, a.Cap(), 2)
}

func Test_Array_ClearResetsCapacity(t *testing.T) {
	a := NewArray(Natural[int](), 3, 3)
	insertAll[int](a, 1, 2, 3, 4, 5)
	assert.Equal(t, a.Cap(), 12)
	a.Clear()
	assert.Equal(t, a.Cap(), 3)
	assert.Equal(t, a.Len(), 0)
}

func Test_Array_KeepsHandleIndexes(t *testing.T) {
	a := NewArray(Natural[int](), 3, 2)
	insertAll[int](a, 10, 20, 30, 40)
	for i := range 4 {
		assert.Equal(t, a.items[i].index, i)
	}

	thirty := a.Find(30)
	a.Insert(5)
	assert.Equal(t, thirty.index, 3)
	a.Delete(a.Find(10))
	a.Delete(a.Find(5))
	assert.Equal(t, thirty.index, 1)
	assert.Equal(t, a.Next(thirty).Value, 40)
	assert.Equal(t, a.Prev(thirty).Value, 20)
	assert.Nil(t, a.Next(a.Last()))
	assert.Nil(t, a.Prev(a.First()))
}

func Test_Array_CloneKeepsCapacity(t *testing.T) {
	a := NewArray(Natural[int](), 3, 2)
	insertAll[int](a, 1, 2, 3, 4)
	clone := a.Clone()
	assert.Equal(t, clone.Cap(), a.Cap())
	assert.Equal(t, clone.Find(3).index, 2)
	assert.Panics(t, func() { a.Delete(clone.Find(3)) })
}
