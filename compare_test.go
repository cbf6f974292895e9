package medialib

import (
	"testing"

	"github.com/karlseguin/medialib/assert"
)

func Test_Compare_Natural(t *testing.T) {
	compare := Natural[string]()
	assert.Equal(t, compare("a", "b"), -1)
	assert.Equal(t, compare("b", "a"), 1)
	assert.Equal(t, compare("a", "a"), 0)
}

func Test_Compare_ReverseAndThen(t *testing.T) {
	type pair struct {
		major int
		minor string
	}
	compare := Then(Reverse(By(func(p pair) int { return p.major })), By(func(p pair) string { return p.minor }))
	c := NewContainer(compare, nil)
	insertAll(c, pair{1, "b"}, pair{2, "z"}, pair{1, "a"}, pair{3, "m"})
	assert.List(t, Values(c), []pair{{3, "m"}, {2, "z"}, {1, "a"}, {1, "b"}})
}
