package medialib

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// Allocations counts what the manager currently holds.
type Allocations struct {
	Records     int
	Collections int
	// library title and ID indexes, the catalog, one per collection
	Containers     int
	ItemsInUse     int
	ItemsAllocated int
}

func (a Allocations) Render(w io.Writer) {
	render(w, [][]string{
		{"Records", strconv.Itoa(a.Records)},
		{"Collections", strconv.Itoa(a.Collections)},
		{"Containers", strconv.Itoa(a.Containers)},
		{"Container items in use", strconv.Itoa(a.ItemsInUse)},
		{"Container items allocated", strconv.Itoa(a.ItemsAllocated)},
	})
}

// CollectionStats describes how library records are spread across the
// catalog.
type CollectionStats struct {
	Records       int
	InAtLeastOne  int
	InMoreThanOne int
	// sum of every collection's size
	Memberships int
}

func (s CollectionStats) Render(w io.Writer) {
	of := " out of " + strconv.Itoa(s.Records)
	render(w, [][]string{
		{"Records in at least one collection", strconv.Itoa(s.InAtLeastOne) + of},
		{"Records in more than one collection", strconv.Itoa(s.InMoreThanOne) + of},
		{"Total memberships", strconv.Itoa(s.Memberships)},
	})
}

func render(w io.Writer, rows [][]string) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.AppendBulk(rows)
	table.Render()
}

func allocations(l *library, c *catalog) Allocations {
	a := Allocations{
		Records:        l.len(),
		Collections:    c.len(),
		Containers:     3 + c.len(),
		ItemsInUse:     l.byTitle.Len() + l.byID.Len() + c.byName.Len(),
		ItemsAllocated: l.byTitle.Cap() + l.byID.Cap() + c.byName.Cap(),
	}
	c.byName.Each(func(collection *Collection) {
		a.ItemsInUse += collection.members.Len()
		a.ItemsAllocated += collection.members.Cap()
	})
	return a
}

func collectionStats(l *library, c *catalog) CollectionStats {
	s := CollectionStats{Records: l.len()}
	seen := make(map[int]int)
	c.byName.Each(func(collection *Collection) {
		for record := range collection.Members() {
			switch seen[record.id] {
			case 0:
				s.InAtLeastOne++
			case 1:
				s.InMoreThanOne++
			}
			seen[record.id]++
			s.Memberships++
		}
	})
	return s
}
