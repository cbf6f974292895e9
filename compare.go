package medialib

import (
	"golang.org/x/exp/constraints"
)

// Compare orders two values: negative when a sorts before b, zero when the
// container should treat them as the same value, positive otherwise.
type Compare[T any] func(a, b T) int

// Natural orders values by their < operator.
func Natural[T constraints.Ordered]() Compare[T] {
	return compareOrdered[T]
}

// By orders values by a key extracted from each of them.
func By[T any, K constraints.Ordered](key func(T) K) Compare[T] {
	return func(a, b T) int {
		return compareOrdered(key(a), key(b))
	}
}

// Reverse flips an ordering.
func Reverse[T any](compare Compare[T]) Compare[T] {
	return func(a, b T) int {
		return compare(b, a)
	}
}

// Then breaks ties of compare with next.
func Then[T any](compare Compare[T], next Compare[T]) Compare[T] {
	return func(a, b T) int {
		if c := compare(a, b); c != 0 {
			return c
		}
		return next(a, b)
	}
}

func compareOrdered[K constraints.Ordered](a, b K) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
