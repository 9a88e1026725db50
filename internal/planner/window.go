package planner

import "fmt"

// ViewMode selects how wide a window the planner view shows.
type ViewMode string

const (
	ViewDay   ViewMode = "day"
	ViewWeek  ViewMode = "week"
	ViewMonth ViewMode = "month"
	ViewYear  ViewMode = "year"
)

// Window is a closed calendar-date range against which occurrences are
// tested for membership.
type Window struct {
	Start Date
	End   Date
}

// WindowFor derives the view window from a mode and an anchor date:
// day [A, A], week [A, A+6], month and year the full calendar month/year
// containing A.
func WindowFor(mode ViewMode, anchor Date) (Window, error) {
	switch mode {
	case ViewDay:
		return Window{Start: anchor, End: anchor}, nil
	case ViewWeek:
		return Window{Start: anchor, End: anchor.AddDays(6)}, nil
	case ViewMonth:
		first := Date{Year: anchor.Year, Month: anchor.Month, Day: 1}
		last := Date{Year: anchor.Year, Month: anchor.Month, Day: DaysInMonth(anchor.Year, anchor.Month)}
		return Window{Start: first, End: last}, nil
	case ViewYear:
		return Window{
			Start: Date{Year: anchor.Year, Month: 1, Day: 1},
			End:   Date{Year: anchor.Year, Month: 12, Day: 31},
		}, nil
	default:
		return Window{}, fmt.Errorf("unknown view mode %q", mode)
	}
}
