package medialib

import (
	"github.com/cockroachdb/errors"
)

var (
	ErrEmptyTitle          = errors.New("could not read a title")
	ErrInvalidMedium       = errors.New("medium must be a single word")
	ErrDuplicateTitle      = errors.New("library already has a record with this title")
	ErrNoSuchTitle         = errors.New("no record with that title")
	ErrNoSuchID            = errors.New("no record with that ID")
	ErrRatingOutOfRange    = errors.New("rating is out of range")
	ErrRecordInCollection  = errors.New("cannot delete a record that is a member of a collection")
	ErrCollectionsNotEmpty = errors.New("cannot clear all records unless all collections are empty")
	ErrNoMatches           = errors.New("no records contain that string")

	ErrInvalidName         = errors.New("collection name must be a single word")
	ErrDuplicateCollection = errors.New("catalog already has a collection with this name")
	ErrNoSuchCollection    = errors.New("no collection with that name")
	ErrAlreadyMember       = errors.New("record is already a member in the collection")
	ErrNotMember           = errors.New("record is not a member in the collection")

	ErrUnknownBacking = errors.New("unknown container backing")
)
