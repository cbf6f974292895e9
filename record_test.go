package medialib

import (
	"testing"

	. "github.com/karlseguin/expect"
)

type RecordTests struct{}

func Test_Record(t *testing.T) {
	Expectify(new(RecordTests), t)
}

func (_ *RecordTests) Unrated() {
	r := NewRecord(7, "DVD", "Dune")
	Expect(r.Rated()).To.Equal(false)
	Expect(r.Rating()).To.Equal(0)
	Expect(r.String()).To.Equal("7: DVD u Dune")
}

func (_ *RecordTests) Rated() {
	r := NewRecord(12, "VHS", "The Thing")
	Expect(r.SetRating(4) == nil).To.Equal(true)
	Expect(r.Rated()).To.Equal(true)
	Expect(r.String()).To.Equal("12: VHS 4 The Thing")
}

func (_ *RecordTests) RatingBounds() {
	r := NewRecord(1, "DVD", "Alien")
	Expect(r.SetRating(MinRating) == nil).To.Equal(true)
	Expect(r.SetRating(MaxRating) == nil).To.Equal(true)
	Expect(r.SetRating(0) != nil).To.Equal(true)
	Expect(r.SetRating(6) != nil).To.Equal(true)
	Expect(r.Rating()).To.Equal(MaxRating)
}

func (_ *RecordTests) CompactTitle() {
	Expect(CompactTitle("  Blade    Runner  ")).To.Equal("Blade Runner")
	Expect(CompactTitle("Dune\t\t(1984)\n")).To.Equal("Dune (1984)")
	Expect(CompactTitle(" \t ")).To.Equal("")
	Expect(CompactTitle("Alien")).To.Equal("Alien")
}

func (_ *RecordTests) ValidMedium() {
	medium, err := validMedium(" DVD ")
	Expect(medium).To.Equal("DVD")
	Expect(err == nil).To.Equal(true)
	_, err = validMedium("Blu Ray")
	Expect(err != nil).To.Equal(true)
	_, err = validMedium("")
	Expect(err != nil).To.Equal(true)
}

func (_ *RecordTests) Orderings() {
	a := NewRecord(2, "DVD", "Alien")
	b := NewRecord(1, "DVD", "Brazil")
	Expect(ByTitle(a, b)).To.Equal(-1)
	Expect(ByID(a, b)).To.Equal(1)
	Expect(MatchTitle("Brazil")(b)).To.Equal(0)
	Expect(MatchID(2)(b)).To.Equal(1)

	b.SetRating(3)
	Expect(ByRating(a, b)).To.Equal(1)
	a.SetRating(3)
	Expect(ByRating(a, b)).To.Equal(-1)
}
