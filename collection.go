package medialib

import (
	"iter"
	"strings"
	"unicode"

	"github.com/cockroachdb/errors"
)

// Collection is a named set of records ordered by title. It references
// records owned by the library and never modifies them.
type Collection struct {
	name    string
	config  *Configuration
	members Container[*Record]
}

func NewCollection(name string, config *Configuration) *Collection {
	if config == nil {
		config = Configure()
	}
	return &Collection{
		name:    name,
		config:  config,
		members: NewContainer(ByTitle, config),
	}
}

func (c *Collection) Name() string {
	return c.name
}

func (c *Collection) Len() int {
	return c.members.Len()
}

func (c *Collection) Empty() bool {
	return c.members.Empty()
}

func (c *Collection) AddMember(record *Record) error {
	if _, added := c.members.Insert(record); !added {
		return errors.Wrapf(ErrAlreadyMember, "%s: %d", c.name, record.id)
	}
	return nil
}

func (c *Collection) IsMember(record *Record) bool {
	item := c.members.Find(record)
	return item != nil && item.Value == record
}

func (c *Collection) RemoveMember(record *Record) error {
	item := c.members.Find(record)
	if item == nil || item.Value != record {
		return errors.Wrapf(ErrNotMember, "%s: %d", c.name, record.id)
	}
	c.members.Delete(item)
	return nil
}

func (c *Collection) Members() iter.Seq[*Record] {
	return c.members.All()
}

func (c *Collection) Clear() {
	c.members.Clear()
}

// Combine creates a collection called name holding the members of both c
// and other.
func (c *Collection) Combine(name string, other *Collection) *Collection {
	combined := &Collection{
		name:    name,
		config:  c.config,
		members: c.members.Clone(),
	}
	other.members.Each(func(record *Record) {
		combined.members.Insert(record)
	})
	return combined
}

func (c *Collection) String() string {
	var sb strings.Builder
	sb.WriteString("Collection ")
	sb.WriteString(c.name)
	sb.WriteString(" contains:")
	if c.members.Empty() {
		sb.WriteString(" None\n")
		return sb.String()
	}
	sb.WriteByte('\n')
	c.members.Each(func(record *Record) {
		sb.WriteString(record.String())
		sb.WriteByte('\n')
	})
	return sb.String()
}

// ByName orders collections by name.
var ByName = By(func(c *Collection) string { return c.name })

// MatchName searches a name ordered container for name.
func MatchName(name string) func(*Collection) int {
	return func(c *Collection) int {
		return strings.Compare(name, c.name)
	}
}

func validName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.IndexFunc(name, unicode.IsSpace) != -1 {
		return "", errors.Wrapf(ErrInvalidName, "%q", name)
	}
	return name, nil
}
