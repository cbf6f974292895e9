package medialib

import (
	"github.com/cockroachdb/errors"
)

// Item is the handle of a value stored in a Container. It stays valid until
// the item itself is deleted or its container is cleared.
type Item[T any] struct {
	Value T
	index int
	next  *Item[T]
	prev  *Item[T]
	owner any
	// only set on btree search probes
	match func(T) int
}

func newItem[T any](value T, owner any) *Item[T] {
	return &Item[T]{
		Value: value,
		owner: owner,
	}
}

func (i *Item[T]) belongsTo(owner any) bool {
	return i != nil && i.owner == owner
}

func (i *Item[T]) release() {
	i.owner = nil
	i.next = nil
	i.prev = nil
}

func foreignItem() error {
	return errors.AssertionFailedf("medialib: item does not belong to this container")
}
