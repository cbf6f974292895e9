package medialib

import (
	"github.com/cockroachdb/errors"
)

// library holds every record twice: once ordered by title, once by ID. Both
// containers reference the same records.
type library struct {
	byTitle Container[*Record]
	byID    Container[*Record]
	nextID  int
}

func newLibrary(config *Configuration) *library {
	return &library{
		byTitle: NewContainer(ByTitle, config),
		byID:    NewContainer(ByID, config),
		nextID:  1,
	}
}

func (l *library) add(medium string, title string) (*Record, error) {
	medium, err := validMedium(medium)
	if err != nil {
		return nil, err
	}
	title = CompactTitle(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if l.byTitle.FindFunc(MatchTitle(title)) != nil {
		return nil, errors.Wrapf(ErrDuplicateTitle, "%q", title)
	}
	record := NewRecord(l.nextID, medium, title)
	l.insert(record)
	l.nextID++
	return record, nil
}

func (l *library) insert(record *Record) {
	l.byTitle.Insert(record)
	l.byID.Insert(record)
}

func (l *library) title(title string) (*Record, error) {
	title = CompactTitle(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	item := l.byTitle.FindFunc(MatchTitle(title))
	if item == nil {
		return nil, errors.Wrapf(ErrNoSuchTitle, "%q", title)
	}
	return item.Value, nil
}

func (l *library) id(id int) (*Record, error) {
	item := l.byID.FindFunc(MatchID(id))
	if item == nil {
		return nil, errors.Wrapf(ErrNoSuchID, "%d", id)
	}
	return item.Value, nil
}

func (l *library) remove(record *Record) {
	if item := l.byTitle.Find(record); item != nil {
		l.byTitle.Delete(item)
	}
	if item := l.byID.Find(record); item != nil {
		l.byID.Delete(item)
	}
}

// retitle moves record to its new place in the title index. The ID index
// is unaffected.
func (l *library) retitle(record *Record, title string) {
	if item := l.byTitle.Find(record); item != nil {
		l.byTitle.Delete(item)
	}
	record.title = title
	l.byTitle.Insert(record)
}

func (l *library) clear() {
	l.byTitle.Clear()
	l.byID.Clear()
	l.nextID = 1
}

func (l *library) len() int {
	return l.byTitle.Len()
}
