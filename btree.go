package medialib

import (
	"iter"

	"github.com/google/btree"
)

const defaultDegree = 8

// BTree is a Container over github.com/google/btree. All searches, inserts
// and deletes are logarithmic.
type BTree[T any] struct {
	compare Compare[T]
	degree  int
	tree    *btree.BTreeG[*Item[T]]
}

func NewBTree[T any](compare Compare[T], degree int) *BTree[T] {
	if degree < 2 {
		degree = defaultDegree
	}
	t := &BTree[T]{compare: compare, degree: degree}
	t.tree = btree.NewG(degree, t.less)
	return t
}

// Probes built by FindFunc carry a match function instead of a value, which
// lets the tree be searched by key without building a T.
func (t *BTree[T]) less(a, b *Item[T]) bool {
	switch {
	case a.match != nil:
		return a.match(b.Value) < 0
	case b.match != nil:
		return b.match(a.Value) > 0
	}
	return t.compare(a.Value, b.Value) < 0
}

func (t *BTree[T]) Len() int {
	return t.tree.Len()
}

func (t *BTree[T]) Empty() bool {
	return t.tree.Len() == 0
}

func (t *BTree[T]) Cap() int {
	return t.tree.Len()
}

func (t *BTree[T]) Clear() {
	t.tree.Ascend(func(item *Item[T]) bool {
		item.release()
		return true
	})
	t.tree.Clear(false)
}

func (t *BTree[T]) Insert(value T) (*Item[T], bool) {
	if existing, ok := t.tree.Get(&Item[T]{Value: value}); ok {
		return existing, false
	}
	item := newItem(value, any(t))
	t.tree.ReplaceOrInsert(item)
	return item, true
}

func (t *BTree[T]) Find(probe T) *Item[T] {
	item, _ := t.tree.Get(&Item[T]{Value: probe})
	return item
}

func (t *BTree[T]) FindFunc(match func(T) int) *Item[T] {
	item, _ := t.tree.Get(&Item[T]{match: match})
	return item
}

func (t *BTree[T]) Delete(item *Item[T]) {
	t.check(item)
	if _, ok := t.tree.Delete(item); !ok {
		panic(foreignItem())
	}
	item.release()
}

func (t *BTree[T]) First() *Item[T] {
	item, _ := t.tree.Min()
	return item
}

func (t *BTree[T]) Last() *Item[T] {
	item, _ := t.tree.Max()
	return item
}

func (t *BTree[T]) Next(item *Item[T]) *Item[T] {
	t.check(item)
	var next *Item[T]
	t.tree.AscendGreaterOrEqual(item, func(candidate *Item[T]) bool {
		if candidate == item {
			return true
		}
		next = candidate
		return false
	})
	return next
}

func (t *BTree[T]) Prev(item *Item[T]) *Item[T] {
	t.check(item)
	var prev *Item[T]
	t.tree.DescendLessOrEqual(item, func(candidate *Item[T]) bool {
		if candidate == item {
			return true
		}
		prev = candidate
		return false
	})
	return prev
}

func (t *BTree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		t.tree.Ascend(func(item *Item[T]) bool {
			return yield(item.Value)
		})
	}
}

func (t *BTree[T]) Each(fn func(T)) {
	each(t.All(), fn)
}

func (t *BTree[T]) Any(fn func(T) bool) bool {
	return anyOf(t.All(), fn)
}

func (t *BTree[T]) Clone() Container[T] {
	c := NewBTree(t.compare, t.degree)
	t.tree.Ascend(func(item *Item[T]) bool {
		c.tree.ReplaceOrInsert(newItem(item.Value, any(c)))
		return true
	})
	return c
}

func (t *BTree[T]) check(item *Item[T]) {
	if !item.belongsTo(any(t)) {
		panic(foreignItem())
	}
}
