package medialib

type EventKind int32

const (
	EventRecordAdded EventKind = iota
	EventRecordDeleted
	EventRatingChanged
	EventTitleChanged
	EventLibraryCleared
	EventCollectionAdded
	EventCollectionDeleted
	EventMemberAdded
	EventMemberRemoved
	EventCatalogCleared
)

func (k EventKind) String() string {
	switch k {
	case EventRecordAdded:
		return "record_added"
	case EventRecordDeleted:
		return "record_deleted"
	case EventRatingChanged:
		return "rating_changed"
	case EventTitleChanged:
		return "title_changed"
	case EventLibraryCleared:
		return "library_cleared"
	case EventCollectionAdded:
		return "collection_added"
	case EventCollectionDeleted:
		return "collection_deleted"
	case EventMemberAdded:
		return "member_added"
	case EventMemberRemoved:
		return "member_removed"
	case EventCatalogCleared:
		return "catalog_cleared"
	}
	return "unknown"
}

// Event describes a completed mutation. Record is a copy taken after the
// change; Collection is the collection name, when one is involved.
type Event struct {
	Kind       EventKind
	Record     Record
	Collection string
}
