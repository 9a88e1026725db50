package planner

import (
	"sort"
	"strings"
)

// Filter narrows a materialized occurrence list before display. Zero values
// match everything.
type Filter struct {
	Category string
	Priority string
	Status   Status
	Search   string
}

// Apply returns the occurrences matching every set predicate. Search is a
// case-insensitive substring match over title, description and notes.
func (f Filter) Apply(occs []Occurrence) []Occurrence {
	if f == (Filter{}) {
		return occs
	}
	needle := strings.ToLower(strings.TrimSpace(f.Search))
	out := make([]Occurrence, 0, len(occs))
	for _, o := range occs {
		if f.Category != "" && o.Category != f.Category {
			continue
		}
		if f.Priority != "" && o.Priority != f.Priority {
			continue
		}
		if f.Status != "" && o.Status != f.Status {
			continue
		}
		if needle != "" && !matchesSearch(o, needle) {
			continue
		}
		out = append(out, o)
	}
	return out
}

func matchesSearch(o Occurrence, needle string) bool {
	return strings.Contains(strings.ToLower(o.Title), needle) ||
		strings.Contains(strings.ToLower(o.Description), needle) ||
		strings.Contains(strings.ToLower(o.Notes), needle)
}

// SortKey names a display ordering for occurrences.
type SortKey string

const (
	SortByDate     SortKey = "date"
	SortByPriority SortKey = "priority"
	SortByTitle    SortKey = "title"
)

var priorityRank = map[string]int{"high": 0, "medium": 1, "low": 2}

// Sort orders occurrences in place. Date order breaks ties by time-of-day
// (untimed occurrences last) and then priority; priority order breaks ties
// by date. Unknown keys fall back to date order.
func Sort(occs []Occurrence, key SortKey) {
	sort.SliceStable(occs, func(i, j int) bool {
		a, b := occs[i], occs[j]
		switch key {
		case SortByPriority:
			if priorityRank[a.Priority] != priorityRank[b.Priority] {
				return priorityRank[a.Priority] < priorityRank[b.Priority]
			}
			return a.Date < b.Date
		case SortByTitle:
			return strings.ToLower(a.Title) < strings.ToLower(b.Title)
		default:
			if a.Date != b.Date {
				return a.Date < b.Date
			}
			if a.TimeOfDay != b.TimeOfDay {
				if a.TimeOfDay == "" {
					return false
				}
				if b.TimeOfDay == "" {
					return true
				}
				return a.TimeOfDay < b.TimeOfDay
			}
			return priorityRank[a.Priority] < priorityRank[b.Priority]
		}
	})
}
