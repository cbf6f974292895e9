package medialib

import (
	"iter"
)

const (
	defaultInitialCapacity = 3
	defaultGrowth          = 2
)

// Array is a Container over a dynamic array. Searches are binary, inserts
// and deletes shift the tail of the array.
type Array[T any] struct {
	compare Compare[T]
	items   []*Item[T]
	initial int
	growth  int
}

// NewArray creates an empty array holding initial cells. When full, the
// array is reallocated to growth * (size + 1) cells.
func NewArray[T any](compare Compare[T], initial int, growth int) *Array[T] {
	if initial < 1 {
		initial = 1
	}
	if growth < 1 {
		growth = defaultGrowth
	}
	return &Array[T]{
		compare: compare,
		initial: initial,
		growth:  growth,
		items:   make([]*Item[T], 0, initial),
	}
}

func (a *Array[T]) Len() int {
	return len(a.items)
}

func (a *Array[T]) Empty() bool {
	return len(a.items) == 0
}

func (a *Array[T]) Cap() int {
	return cap(a.items)
}

func (a *Array[T]) Clear() {
	for _, item := range a.items {
		item.release()
	}
	a.items = make([]*Item[T], 0, a.initial)
}

func (a *Array[T]) Insert(value T) (*Item[T], bool) {
	at, found := a.search(a.probe(value))
	if found {
		return a.items[at], false
	}
	if len(a.items) == cap(a.items) {
		a.grow()
	}
	item := newItem(value, any(a))
	a.items = a.items[:len(a.items)+1]
	copy(a.items[at+1:], a.items[at:])
	a.items[at] = item
	a.reindex(at)
	return item, true
}

func (a *Array[T]) Find(probe T) *Item[T] {
	return a.FindFunc(a.probe(probe))
}

func (a *Array[T]) FindFunc(match func(T) int) *Item[T] {
	at, found := a.search(match)
	if !found {
		return nil
	}
	return a.items[at]
}

func (a *Array[T]) Delete(item *Item[T]) {
	a.check(item)
	at := item.index
	copy(a.items[at:], a.items[at+1:])
	last := len(a.items) - 1
	a.items[last] = nil
	a.items = a.items[:last]
	a.reindex(at)
	item.release()
}

func (a *Array[T]) First() *Item[T] {
	if len(a.items) == 0 {
		return nil
	}
	return a.items[0]
}

func (a *Array[T]) Last() *Item[T] {
	if len(a.items) == 0 {
		return nil
	}
	return a.items[len(a.items)-1]
}

func (a *Array[T]) Next(item *Item[T]) *Item[T] {
	a.check(item)
	if at := item.index + 1; at < len(a.items) {
		return a.items[at]
	}
	return nil
}

func (a *Array[T]) Prev(item *Item[T]) *Item[T] {
	a.check(item)
	if item.index == 0 {
		return nil
	}
	return a.items[item.index-1]
}

func (a *Array[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range a.items {
			if !yield(item.Value) {
				return
			}
		}
	}
}

func (a *Array[T]) Each(fn func(T)) {
	each(a.All(), fn)
}

func (a *Array[T]) Any(fn func(T) bool) bool {
	return anyOf(a.All(), fn)
}

func (a *Array[T]) Clone() Container[T] {
	c := &Array[T]{
		compare: a.compare,
		initial: a.initial,
		growth:  a.growth,
		items:   make([]*Item[T], len(a.items), cap(a.items)),
	}
	for i, item := range a.items {
		clone := newItem(item.Value, any(c))
		clone.index = i
		c.items[i] = clone
	}
	return c
}

// binary search: the position of the match, or where it would be inserted
func (a *Array[T]) search(match func(T) int) (int, bool) {
	low, high := 0, len(a.items)
	for low < high {
		mid := int(uint(low+high) >> 1)
		c := match(a.items[mid].Value)
		switch {
		case c == 0:
			return mid, true
		case c < 0:
			high = mid
		default:
			low = mid + 1
		}
	}
	return low, false
}

func (a *Array[T]) probe(value T) func(T) int {
	return func(stored T) int {
		return a.compare(value, stored)
	}
}

func (a *Array[T]) grow() {
	size := len(a.items)
	items := make([]*Item[T], size, a.growth*(size+1))
	copy(items, a.items)
	a.items = items
}

func (a *Array[T]) reindex(from int) {
	for i := from; i < len(a.items); i++ {
		a.items[i].index = i
	}
}

func (a *Array[T]) check(item *Item[T]) {
	if !item.belongsTo(any(a)) || item.index >= len(a.items) || a.items[item.index] != item {
		panic(foreignItem())
	}
}
