package medialib

import (
	"github.com/cockroachdb/errors"
)

// catalog holds every collection ordered by name.
type catalog struct {
	config *Configuration
	byName Container[*Collection]
}

func newCatalog(config *Configuration) *catalog {
	return &catalog{
		config: config,
		byName: NewContainer(ByName, config),
	}
}

func (c *catalog) add(name string) (*Collection, error) {
	name, err := validName(name)
	if err != nil {
		return nil, err
	}
	collection := NewCollection(name, c.config)
	if err := c.insert(collection); err != nil {
		return nil, err
	}
	return collection, nil
}

func (c *catalog) insert(collection *Collection) error {
	if _, added := c.byName.Insert(collection); !added {
		return errors.Wrapf(ErrDuplicateCollection, "%q", collection.name)
	}
	return nil
}

func (c *catalog) get(name string) (*Collection, error) {
	item := c.byName.FindFunc(MatchName(name))
	if item == nil {
		return nil, errors.Wrapf(ErrNoSuchCollection, "%q", name)
	}
	return item.Value, nil
}

func (c *catalog) remove(name string) (*Collection, error) {
	item := c.byName.FindFunc(MatchName(name))
	if item == nil {
		return nil, errors.Wrapf(ErrNoSuchCollection, "%q", name)
	}
	collection := item.Value
	c.byName.Delete(item)
	return collection, nil
}

// holding returns the collections record is a member of.
func (c *catalog) holding(record *Record) []*Collection {
	var holders []*Collection
	c.byName.Each(func(collection *Collection) {
		if collection.IsMember(record) {
			holders = append(holders, collection)
		}
	})
	return holders
}

func (c *catalog) referenced(record *Record) bool {
	return c.byName.Any(func(collection *Collection) bool {
		return collection.IsMember(record)
	})
}

func (c *catalog) allEmpty() bool {
	return !c.byName.Any(func(collection *Collection) bool {
		return !collection.Empty()
	})
}

func (c *catalog) clear() {
	c.byName.Clear()
}

func (c *catalog) len() int {
	return c.byName.Len()
}
