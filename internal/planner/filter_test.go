package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleOccurrences() []Occurrence {
	return []Occurrence{
		{TaskID: 1, Title: "Revise DBMS notes", Category: "Study", Priority: "high", Date: "2025-06-12", Status: StatusPending},
		{TaskID: 2, Title: "Gym", Category: "Health", Priority: "low", Date: "2025-06-10", TimeOfDay: "18:00", Status: StatusCompleted},
		{TaskID: 3, Title: "Mock paper", Category: "Study", Priority: "medium", Date: "2025-06-10", TimeOfDay: "09:00", Status: StatusPending},
		{TaskID: 4, Title: "Pay hostel fees", Category: "General", Priority: "high", Date: "2025-06-10", Status: StatusPending, Notes: "counter closes at noon"},
	}
}

func taskIDs(occs []Occurrence) []uint {
	out := make([]uint, 0, len(occs))
	for _, o := range occs {
		out = append(out, o.TaskID)
	}
	return out
}

func TestFilterApply(t *testing.T) {
	occs := sampleOccurrences()

	tests := []struct {
		name   string
		filter Filter
		want   []uint
	}{
		{"empty filter keeps everything", Filter{}, []uint{1, 2, 3, 4}},
		{"by category", Filter{Category: "Study"}, []uint{1, 3}},
		{"by priority", Filter{Priority: "high"}, []uint{1, 4}},
		{"by status", Filter{Status: StatusCompleted}, []uint{2}},
		{"search matches title case-insensitively", Filter{Search: "dbms"}, []uint{1}},
		{"search matches notes", Filter{Search: "counter"}, []uint{4}},
		{"combined predicates", Filter{Category: "Study", Status: StatusPending, Search: "paper"}, []uint{3}},
		{"no match", Filter{Category: "Study", Priority: "low"}, []uint{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.filter.Apply(occs)
			assert.Equal(t, tt.want, taskIDs(got))
		})
	}
}

func TestSortByDate(t *testing.T) {
	occs := sampleOccurrences()
	Sort(occs, SortByDate)
	// Same-day order: timed occurrences first by time, untimed last,
	// priority breaking remaining ties.
	assert.Equal(t, []uint{3, 2, 4, 1}, taskIDs(occs))
}

func TestSortByPriority(t *testing.T) {
	occs := sampleOccurrences()
	Sort(occs, SortByPriority)
	assert.Equal(t, []uint{4, 1, 3, 2}, taskIDs(occs))
}

func TestSortByTitle(t *testing.T) {
	occs := sampleOccurrences()
	Sort(occs, SortByTitle)
	assert.Equal(t, []uint{2, 3, 4, 1}, taskIDs(occs))
}

func TestSortUnknownKeyFallsBackToDate(t *testing.T) {
	occs := sampleOccurrences()
	Sort(occs, "banana")
	assert.Equal(t, "2025-06-10", occs[0].Date)
}
