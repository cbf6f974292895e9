// A media library: records indexed by title and ID, grouped into named
// collections, all kept in ordered containers.
package medialib

import (
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// Manager owns a library of records and a catalog of collections and keeps
// the rules that span both. It is safe for concurrent use. Records handed
// out are copies.
type Manager struct {
	sync.RWMutex
	*Configuration
	library *library
	catalog *catalog
}

// Create a new manager with the specified configuration
// See medialib.Configure() for creating a configuration
func New(config *Configuration) *Manager {
	if config == nil {
		config = Configure()
	}
	return &Manager{
		Configuration: config,
		library:       newLibrary(config),
		catalog:       newCatalog(config),
	}
}

// Adds a record with the next ID. The title is compacted first.
func (m *Manager) AddRecord(medium string, title string) (Record, error) {
	m.Lock()
	record, err := m.library.add(medium, title)
	var added Record
	if err == nil {
		added = *record
	}
	m.Unlock()
	if err != nil {
		return Record{}, m.reject("add record", err, zap.String("title", title))
	}
	m.logger.Debug("record added", zap.Int("id", added.id), zap.String("title", added.title))
	m.emit(Event{Kind: EventRecordAdded, Record: added})
	return added, nil
}

func (m *Manager) FindRecord(title string) (Record, error) {
	m.RLock()
	defer m.RUnlock()
	record, err := m.library.title(title)
	if err != nil {
		return Record{}, err
	}
	return *record, nil
}

func (m *Manager) Record(id int) (Record, error) {
	m.RLock()
	defer m.RUnlock()
	record, err := m.library.id(id)
	if err != nil {
		return Record{}, err
	}
	return *record, nil
}

func (m *Manager) ModifyRating(id int, rating int) (Record, error) {
	m.Lock()
	modified, err := m.modifyRating(id, rating)
	m.Unlock()
	if err != nil {
		return Record{}, m.reject("modify rating", err, zap.Int("id", id), zap.Int("rating", rating))
	}
	m.logger.Debug("rating changed", zap.Int("id", id), zap.Int("rating", rating))
	m.emit(Event{Kind: EventRatingChanged, Record: modified})
	return modified, nil
}

func (m *Manager) modifyRating(id int, rating int) (Record, error) {
	record, err := m.library.id(id)
	if err != nil {
		return Record{}, err
	}
	if err := record.SetRating(rating); err != nil {
		return Record{}, err
	}
	return *record, nil
}

// Retitles a record. The record is moved within the title index and within
// every collection holding it.
func (m *Manager) ModifyTitle(id int, title string) (Record, error) {
	m.Lock()
	modified, err := m.modifyTitle(id, title)
	m.Unlock()
	if err != nil {
		return Record{}, m.reject("modify title", err, zap.Int("id", id), zap.String("title", title))
	}
	m.logger.Debug("title changed", zap.Int("id", id), zap.String("title", modified.title))
	m.emit(Event{Kind: EventTitleChanged, Record: modified})
	return modified, nil
}

func (m *Manager) modifyTitle(id int, title string) (Record, error) {
	record, err := m.library.id(id)
	if err != nil {
		return Record{}, err
	}
	title = CompactTitle(title)
	if title == "" {
		return Record{}, ErrEmptyTitle
	}
	if m.library.byTitle.FindFunc(MatchTitle(title)) != nil {
		return Record{}, errors.Wrapf(ErrDuplicateTitle, "%q", title)
	}

	// members are ordered by title, so they have to leave before it changes
	holders := m.catalog.holding(record)
	for _, collection := range holders {
		_ = collection.RemoveMember(record)
	}
	m.library.retitle(record, title)
	for _, collection := range holders {
		_ = collection.AddMember(record)
	}
	return *record, nil
}

// Deletes a record which no collection references.
func (m *Manager) DeleteRecord(title string) (Record, error) {
	m.Lock()
	deleted, err := m.deleteRecord(title)
	m.Unlock()
	if err != nil {
		return Record{}, m.reject("delete record", err, zap.String("title", title))
	}
	m.logger.Debug("record deleted", zap.Int("id", deleted.id), zap.String("title", deleted.title))
	m.emit(Event{Kind: EventRecordDeleted, Record: deleted})
	return deleted, nil
}

func (m *Manager) deleteRecord(title string) (Record, error) {
	record, err := m.library.title(title)
	if err != nil {
		return Record{}, err
	}
	if m.catalog.referenced(record) {
		return Record{}, errors.Wrapf(ErrRecordInCollection, "%d %s", record.id, record.title)
	}
	m.library.remove(record)
	return *record, nil
}

func (m *Manager) AddCollection(name string) error {
	m.Lock()
	collection, err := m.catalog.add(name)
	m.Unlock()
	if err != nil {
		return m.reject("add collection", err, zap.String("collection", name))
	}
	m.logger.Debug("collection added", zap.String("collection", collection.name))
	m.emit(Event{Kind: EventCollectionAdded, Collection: collection.name})
	return nil
}

// Deletes a collection. Its member records stay in the library.
func (m *Manager) DeleteCollection(name string) error {
	m.Lock()
	collection, err := m.catalog.remove(name)
	m.Unlock()
	if err != nil {
		return m.reject("delete collection", err, zap.String("collection", name))
	}
	m.logger.Debug("collection deleted", zap.String("collection", collection.name))
	m.emit(Event{Kind: EventCollectionDeleted, Collection: collection.name})
	return nil
}

func (m *Manager) AddMember(name string, id int) (Record, error) {
	m.Lock()
	member, err := m.member(name, id, (*Collection).AddMember)
	m.Unlock()
	if err != nil {
		return Record{}, m.reject("add member", err, zap.String("collection", name), zap.Int("id", id))
	}
	m.logger.Debug("member added", zap.String("collection", name), zap.Int("id", id))
	m.emit(Event{Kind: EventMemberAdded, Record: member, Collection: name})
	return member, nil
}

func (m *Manager) DeleteMember(name string, id int) (Record, error) {
	m.Lock()
	member, err := m.member(name, id, (*Collection).RemoveMember)
	m.Unlock()
	if err != nil {
		return Record{}, m.reject("delete member", err, zap.String("collection", name), zap.Int("id", id))
	}
	m.logger.Debug("member removed", zap.String("collection", name), zap.Int("id", id))
	m.emit(Event{Kind: EventMemberRemoved, Record: member, Collection: name})
	return member, nil
}

func (m *Manager) member(name string, id int, op func(*Collection, *Record) error) (Record, error) {
	collection, err := m.catalog.get(name)
	if err != nil {
		return Record{}, err
	}
	record, err := m.library.id(id)
	if err != nil {
		return Record{}, err
	}
	if err := op(collection, record); err != nil {
		return Record{}, err
	}
	return *record, nil
}

// Creates the collection name holding every member of first and second.
func (m *Manager) CombineCollections(first string, second string, name string) error {
	m.Lock()
	err := m.combine(first, second, name)
	m.Unlock()
	if err != nil {
		return m.reject("combine collections", err,
			zap.String("first", first), zap.String("second", second), zap.String("collection", name))
	}
	m.logger.Debug("collections combined",
		zap.String("first", first), zap.String("second", second), zap.String("collection", name))
	m.emit(Event{Kind: EventCollectionAdded, Collection: name})
	return nil
}

func (m *Manager) combine(first string, second string, name string) error {
	a, err := m.catalog.get(first)
	if err != nil {
		return err
	}
	b, err := m.catalog.get(second)
	if err != nil {
		return err
	}
	name, err = validName(name)
	if err != nil {
		return err
	}
	return m.catalog.insert(a.Combine(name, b))
}

// Deletes every record and restarts IDs at 1. Refused while any collection
// has members.
func (m *Manager) ClearLibrary() error {
	m.Lock()
	var err error
	if m.catalog.allEmpty() {
		m.library.clear()
	} else {
		err = ErrCollectionsNotEmpty
	}
	m.Unlock()
	if err != nil {
		return m.reject("clear library", err)
	}
	m.logger.Debug("library cleared")
	m.emit(Event{Kind: EventLibraryCleared})
	return nil
}

func (m *Manager) ClearCatalog() {
	m.Lock()
	m.catalog.clear()
	m.Unlock()
	m.logger.Debug("catalog cleared")
	m.emit(Event{Kind: EventCatalogCleared})
}

// Deletes every collection and every record, and restarts IDs at 1.
func (m *Manager) ClearAll() {
	m.Lock()
	m.catalog.clear()
	m.library.clear()
	m.Unlock()
	m.logger.Debug("all data cleared")
	m.emit(Event{Kind: EventCatalogCleared}, Event{Kind: EventLibraryCleared})
}

// Records whose title contains key, ignoring case, in title order.
func (m *Manager) FindWithString(key string) ([]Record, error) {
	key = strings.ToLower(strings.TrimSpace(key))
	m.RLock()
	defer m.RUnlock()
	var matches []Record
	if key != "" {
		m.library.byTitle.Each(func(record *Record) {
			if strings.Contains(strings.ToLower(record.title), key) {
				matches = append(matches, *record)
			}
		})
	}
	if len(matches) == 0 {
		return nil, errors.Wrapf(ErrNoMatches, "%q", key)
	}
	return matches, nil
}

// Every record, highest rating first, ties in title order.
func (m *Manager) ListRatings() []Record {
	m.RLock()
	defer m.RUnlock()
	ratings := NewContainer(ByRating, m.Configuration)
	m.library.byTitle.Each(func(record *Record) {
		ratings.Insert(record)
	})
	return records(ratings)
}

func (m *Manager) CollectionStats() CollectionStats {
	m.RLock()
	defer m.RUnlock()
	return collectionStats(m.library, m.catalog)
}

func (m *Manager) Allocations() Allocations {
	m.RLock()
	defer m.RUnlock()
	return allocations(m.library, m.catalog)
}

// Every record, in title order.
func (m *Manager) Library() []Record {
	m.RLock()
	defer m.RUnlock()
	return records(m.library.byTitle)
}

// Every collection name, in order.
func (m *Manager) Collections() []string {
	m.RLock()
	defer m.RUnlock()
	names := make([]string, 0, m.catalog.len())
	m.catalog.byName.Each(func(collection *Collection) {
		names = append(names, collection.name)
	})
	return names
}

// The members of a collection, in title order.
func (m *Manager) Members(name string) ([]Record, error) {
	m.RLock()
	defer m.RUnlock()
	collection, err := m.catalog.get(name)
	if err != nil {
		return nil, err
	}
	return records(collection.members), nil
}

func (m *Manager) PrintLibrary(w io.Writer) error {
	m.RLock()
	var sb strings.Builder
	if m.library.len() == 0 {
		sb.WriteString("Library is empty\n")
	} else {
		sb.WriteString("Library contains " + strconv.Itoa(m.library.len()) + " records:\n")
		m.library.byTitle.Each(func(record *Record) {
			sb.WriteString(record.String())
			sb.WriteByte('\n')
		})
	}
	m.RUnlock()
	_, err := io.WriteString(w, sb.String())
	return err
}

func (m *Manager) PrintCatalog(w io.Writer) error {
	m.RLock()
	var sb strings.Builder
	if m.catalog.len() == 0 {
		sb.WriteString("Catalog is empty\n")
	} else {
		sb.WriteString("Catalog contains " + strconv.Itoa(m.catalog.len()) + " collections:\n")
		m.catalog.byName.Each(func(collection *Collection) {
			sb.WriteString(collection.String())
		})
	}
	m.RUnlock()
	_, err := io.WriteString(w, sb.String())
	return err
}

func (m *Manager) PrintCollection(w io.Writer, name string) error {
	m.RLock()
	collection, err := m.catalog.get(name)
	var out string
	if err == nil {
		out = collection.String()
	}
	m.RUnlock()
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

func (m *Manager) reject(op string, err error, fields ...zap.Field) error {
	m.logger.Debug(op+" rejected", append(fields, zap.Error(err))...)
	return err
}

func (m *Manager) emit(events ...Event) {
	if m.onEvent == nil {
		return
	}
	for _, event := range events {
		m.onEvent(event)
	}
}

func records(c Container[*Record]) []Record {
	out := make([]Record, 0, c.Len())
	c.Each(func(record *Record) {
		out = append(out, *record)
	})
	return out
}
