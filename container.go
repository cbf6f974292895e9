package medialib

import (
	"iter"
	"strings"

	"github.com/cockroachdb/errors"
)

// Container keeps values sorted by a comparison function and rejects
// values that compare equal to one already present. It never modifies the
// values it holds.
type Container[T any] interface {
	// Number of items currently stored
	Len() int
	Empty() bool
	// Number of item cells allocated. Equal to Len for node based stores.
	Cap() int
	// Removes every item. Outstanding handles become invalid.
	Clear()

	// Puts value in order. When an equal value is already present the
	// container is unchanged and that item is returned with false.
	Insert(value T) (*Item[T], bool)
	// Returns the item equal to probe according to the container ordering,
	// or nil.
	Find(probe T) *Item[T]
	// Searches with match, which compares a key (held by the closure) to a
	// stored value. match must order consistently with the container.
	FindFunc(match func(T) int) *Item[T]
	// Removes the designated item. Panics when the item isn't ours.
	Delete(item *Item[T])

	First() *Item[T]
	Last() *Item[T]
	Next(item *Item[T]) *Item[T]
	Prev(item *Item[T]) *Item[T]

	// Ordered traversal
	All() iter.Seq[T]
	Each(fn func(T))
	// Applies fn until it returns true. Reports whether it did.
	Any(fn func(T) bool) bool

	// An independent container with the same ordering and values.
	Clone() Container[T]
}

type Backing int

const (
	ArrayBacking Backing = iota
	ListBacking
	BTreeBacking
)

func (b Backing) String() string {
	switch b {
	case ArrayBacking:
		return "array"
	case ListBacking:
		return "list"
	case BTreeBacking:
		return "btree"
	}
	return "unknown"
}

func ParseBacking(s string) (Backing, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "array":
		return ArrayBacking, nil
	case "list":
		return ListBacking, nil
	case "btree":
		return BTreeBacking, nil
	}
	return ArrayBacking, errors.Wrapf(ErrUnknownBacking, "%q", s)
}

// NewContainer creates the backing store selected by config (or the default
// configuration when config is nil).
func NewContainer[T any](compare Compare[T], config *Configuration) Container[T] {
	if config == nil {
		config = Configure()
	}
	switch config.backing {
	case ListBacking:
		return NewList(compare)
	case BTreeBacking:
		return NewBTree(compare, config.degree)
	}
	return NewArray(compare, config.initialCapacity, config.growth)
}

// FindKey searches c for the value matching key. cmp compares the key to a
// stored value and must be consistent with the ordering of c.
func FindKey[T, K any](c Container[T], key K, cmp func(K, T) int) *Item[T] {
	return c.FindFunc(func(value T) int {
		return cmp(key, value)
	})
}

// Values copies the values of c, in order.
func Values[T any](c Container[T]) []T {
	values := make([]T, 0, c.Len())
	for value := range c.All() {
		values = append(values, value)
	}
	return values
}

func each[T any](all iter.Seq[T], fn func(T)) {
	for value := range all {
		fn(value)
	}
}

func anyOf[T any](all iter.Seq[T], fn func(T) bool) bool {
	for value := range all {
		if fn(value) {
			return true
		}
	}
	return false
}
