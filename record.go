package medialib

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/cockroachdb/errors"
)

const (
	MinRating = 1
	MaxRating = 5
)

// Record is a single catalog entry. A rating of 0 means unrated.
type Record struct {
	id     int
	medium string
	title  string
	rating int
}

func NewRecord(id int, medium string, title string) *Record {
	return &Record{
		id:     id,
		medium: medium,
		title:  title,
	}
}

func (r Record) ID() int {
	return r.id
}

func (r Record) Medium() string {
	return r.medium
}

func (r Record) Title() string {
	return r.title
}

func (r Record) Rating() int {
	return r.rating
}

func (r Record) Rated() bool {
	return r.rating != 0
}

// SetRating accepts ratings between MinRating and MaxRating inclusive.
func (r *Record) SetRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return errors.Wrapf(ErrRatingOutOfRange, "%d", rating)
	}
	r.rating = rating
	return nil
}

// ID number, a colon, then medium, rating and title separated by a space.
// An unrated record shows u as its rating.
func (r Record) String() string {
	rating := "u"
	if r.rating != 0 {
		rating = strconv.Itoa(r.rating)
	}
	return strconv.Itoa(r.id) + ": " + r.medium + " " + rating + " " + r.title
}

// ByTitle orders records by title. Library and collection title indexes use it.
var ByTitle = By(func(r *Record) string { return r.title })

// ByID orders records by ID number.
var ByID = By(func(r *Record) int { return r.id })

// ByRating puts the highest rated records first, ties broken by title.
var ByRating = Then(Reverse(By(func(r *Record) int { return r.rating })), ByTitle)

// MatchTitle searches a title ordered container for title.
func MatchTitle(title string) func(*Record) int {
	return func(r *Record) int {
		return strings.Compare(title, r.title)
	}
}

// MatchID searches an ID ordered container for id.
func MatchID(id int) func(*Record) int {
	return func(r *Record) int {
		return compareOrdered(id, r.id)
	}
}

// CompactTitle trims leading and trailing whitespace and collapses every
// embedded run of whitespace to a single space.
func CompactTitle(title string) string {
	var sb strings.Builder
	sb.Grow(len(title))
	space := false
	for _, r := range strings.TrimSpace(title) {
		if unicode.IsSpace(r) {
			space = true
			continue
		}
		if space {
			sb.WriteByte(' ')
			space = false
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func validMedium(medium string) (string, error) {
	medium = strings.TrimSpace(medium)
	if medium == "" || strings.IndexFunc(medium, unicode.IsSpace) != -1 {
		return "", errors.Wrapf(ErrInvalidMedium, "%q", medium)
	}
	return medium, nil
}
