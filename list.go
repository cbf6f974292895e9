package medialib

import (
	"iter"
)

// List is a Container over a doubly linked list. Searches scan from the head
// and stop as soon as they pass where the value would be; once the position
// is known the new node is spliced in.
type List[T any] struct {
	compare Compare[T]
	head    *Item[T]
	tail    *Item[T]
	size    int
}

func NewList[T any](compare Compare[T]) *List[T] {
	return &List[T]{compare: compare}
}

func (l *List[T]) Len() int {
	return l.size
}

func (l *List[T]) Empty() bool {
	return l.size == 0
}

func (l *List[T]) Cap() int {
	return l.size
}

func (l *List[T]) Clear() {
	for item := l.head; item != nil; {
		next := item.next
		item.release()
		item = next
	}
	l.head = nil
	l.tail = nil
	l.size = 0
}

func (l *List[T]) Insert(value T) (*Item[T], bool) {
	for node := l.head; node != nil; node = node.next {
		c := l.compare(value, node.Value)
		if c == 0 {
			return node, false
		}
		if c < 0 {
			item := newItem(value, any(l))
			l.insertBefore(item, node)
			return item, true
		}
	}
	item := newItem(value, any(l))
	l.pushBack(item)
	return item, true
}

func (l *List[T]) Find(probe T) *Item[T] {
	return l.FindFunc(func(stored T) int {
		return l.compare(probe, stored)
	})
}

func (l *List[T]) FindFunc(match func(T) int) *Item[T] {
	for node := l.head; node != nil; node = node.next {
		c := match(node.Value)
		if c == 0 {
			return node
		}
		if c < 0 {
			break
		}
	}
	return nil
}

func (l *List[T]) Delete(item *Item[T]) {
	l.check(item)
	l.remove(item)
	item.release()
}

func (l *List[T]) First() *Item[T] {
	return l.head
}

func (l *List[T]) Last() *Item[T] {
	return l.tail
}

func (l *List[T]) Next(item *Item[T]) *Item[T] {
	l.check(item)
	return item.next
}

func (l *List[T]) Prev(item *Item[T]) *Item[T] {
	l.check(item)
	return item.prev
}

func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for node := l.head; node != nil; node = node.next {
			if !yield(node.Value) {
				return
			}
		}
	}
}

// Backward traverses from the tail.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for node := l.tail; node != nil; node = node.prev {
			if !yield(node.Value) {
				return
			}
		}
	}
}

func (l *List[T]) Each(fn func(T)) {
	each(l.All(), fn)
}

func (l *List[T]) Any(fn func(T) bool) bool {
	return anyOf(l.All(), fn)
}

// Clone copies node by node; the source is already ordered so each copy is
// appended.
func (l *List[T]) Clone() Container[T] {
	c := NewList(l.compare)
	for node := l.head; node != nil; node = node.next {
		c.pushBack(newItem(node.Value, any(c)))
	}
	return c
}

// Swap exchanges the contents of two lists sharing an ordering. Handles
// follow their nodes to the other list.
func (l *List[T]) Swap(other *List[T]) {
	l.head, other.head = other.head, l.head
	l.tail, other.tail = other.tail, l.tail
	l.size, other.size = other.size, l.size
	for node := l.head; node != nil; node = node.next {
		node.owner = any(l)
	}
	for node := other.head; node != nil; node = node.next {
		node.owner = any(other)
	}
}

func (l *List[T]) remove(item *Item[T]) {
	next := item.next
	prev := item.prev

	if next == nil {
		l.tail = prev
	} else {
		next.prev = prev
	}

	if prev == nil {
		l.head = next
	} else {
		prev.next = next
	}
	l.size--
}

func (l *List[T]) insertBefore(item *Item[T], mark *Item[T]) {
	prev := mark.prev
	item.prev = prev
	item.next = mark
	mark.prev = item
	if prev == nil {
		l.head = item
	} else {
		prev.next = item
	}
	l.size++
}

func (l *List[T]) pushBack(item *Item[T]) {
	tail := l.tail
	l.tail = item
	l.size++
	if tail == nil {
		l.head = item
		return
	}
	item.prev = tail
	tail.next = item
}

func (l *List[T]) check(item *Item[T]) {
	if !item.belongsTo(any(l)) {
		panic(foreignItem())
	}
}
