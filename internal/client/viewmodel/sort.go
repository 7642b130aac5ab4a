package viewmodel

import (
	"sort"
	"strings"

	"github.com/dmitrijs2005/carstorage/internal/client/models"
	"golang.org/x/text/collate"
)

type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// SortState is the active sort. An empty Field means source order.
type SortState struct {
	Field string
	Dir   Direction
}

// next returns the state after field is selected: the same field flips
// direction, a different one starts ascending.
func (s SortState) next(field string) SortState {
	if s.Field == field {
		if s.Dir == Ascending {
			return SortState{Field: field, Dir: Descending}
		}
		return SortState{Field: field, Dir: Ascending}
	}
	return SortState{Field: field, Dir: Ascending}
}

// sortRecords orders items in place by the stringified value of the sort
// field. Values compare as text even when they look numeric.
func sortRecords[T models.Record](items []T, s SortState, col *collate.Collator) {
	if s.Field == "" {
		return
	}
	keys := make([]string, len(items))
	for i, it := range items {
		keys[i] = models.FieldValue(it, s.Field)
	}
	idx := make([]int, len(items))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		c := col.CompareString(keys[idx[a]], keys[idx[b]])
		if s.Dir == Descending {
			return c > 0
		}
		return c < 0
	})
	sorted := make([]T, len(items))
	for i, j := range idx {
		sorted[i] = items[j]
	}
	copy(items, sorted)
}

// matches reports whether term occurs, ignoring case, in any field of r.
func matches(r models.Record, term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	for _, f := range r.Fields() {
		if strings.Contains(strings.ToLower(f.Value), term) {
			return true
		}
	}
	return false
}
