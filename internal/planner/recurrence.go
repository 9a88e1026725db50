package planner

import "time"

// Recurrence describes how often a task template repeats.
type Recurrence string

const (
	RecurrenceNone    Recurrence = "none"
	RecurrenceDaily   Recurrence = "daily"
	RecurrenceWeekly  Recurrence = "weekly"
	RecurrenceMonthly Recurrence = "monthly"
)

// Status is the derived completion state of one occurrence.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// Template is the materializer's view of a stored task. Due is the anchor
// occurrence date; recurring occurrences are generated backward from it.
type Template struct {
	ID          uint
	Title       string
	Description string
	Category    string
	Priority    string
	Due         Date
	TimeOfDay   string
	Recurrence  Recurrence
	Notes       string
	Completed   map[string]struct{}
}

// Occurrence is one concrete, dated instance of a template, built on demand
// for display and never persisted.
type Occurrence struct {
	TaskID      uint       `json:"taskId"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Category    string     `json:"category"`
	Priority    string     `json:"priority"`
	Date        string     `json:"date"`
	TimeOfDay   string     `json:"time,omitempty"`
	Recurrence  Recurrence `json:"recurrence"`
	Notes       string     `json:"notes,omitempty"`
	Status      Status     `json:"status"`
}

// Materialize produces the occurrences of one template that fall inside the
// closed window [w.Start, w.End].
//
// Generation is backward-only from the anchor: the anchor is the newest
// occurrence a template ever produces, and a template whose anchor lies
// before w.Start contributes nothing to the window. Tasks do not recur into
// the past relative to their anchor, and are never projected forward past it.
func Materialize(tpl Template, w Window) []Occurrence {
	if w.End.Before(w.Start) {
		return nil
	}

	if tpl.Recurrence == RecurrenceNone {
		if tpl.Due.Before(w.Start) || tpl.Due.After(w.End) {
			return nil
		}
		return []Occurrence{tpl.occurrenceAt(tpl.Due)}
	}

	var out []Occurrence
	switch tpl.Recurrence {
	case RecurrenceDaily, RecurrenceWeekly:
		step := 1
		if tpl.Recurrence == RecurrenceWeekly {
			step = 7
		}
		for d := tpl.Due; !d.Before(w.Start); d = d.AddDays(-step) {
			if !d.After(w.End) {
				out = append(out, tpl.occurrenceAt(d))
			}
		}
	case RecurrenceMonthly:
		for k := 0; ; k++ {
			d := monthsBack(tpl.Due, k)
			if d.Before(w.Start) {
				break
			}
			if !d.After(w.End) {
				out = append(out, tpl.occurrenceAt(d))
			}
		}
	}
	return out
}

// MaterializeAll concatenates per-template occurrences for the window. Each
// occurrence carries its template id so toggle/edit/delete act on the right
// stored task.
func MaterializeAll(tpls []Template, w Window) []Occurrence {
	var out []Occurrence
	for _, tpl := range tpls {
		out = append(out, Materialize(tpl, w)...)
	}
	return out
}

// IsOccurrenceDate reports whether d is a date the template can actually
// produce: the anchor itself, or a date reachable from the anchor by whole
// backward steps of the recurrence period.
func (t Template) IsOccurrenceDate(d Date) bool {
	if d.After(t.Due) {
		return false
	}
	switch t.Recurrence {
	case RecurrenceNone:
		return d == t.Due
	case RecurrenceDaily:
		return true
	case RecurrenceWeekly:
		return DaysBetween(d, t.Due)%7 == 0
	case RecurrenceMonthly:
		k := monthsBetween(d, t.Due)
		return k >= 0 && monthsBack(t.Due, k) == d
	default:
		return false
	}
}

func (t Template) occurrenceAt(d Date) Occurrence {
	status := StatusPending
	if _, ok := t.Completed[d.String()]; ok {
		status = StatusCompleted
	}
	return Occurrence{
		TaskID:      t.ID,
		Title:       t.Title,
		Description: t.Description,
		Category:    t.Category,
		Priority:    t.Priority,
		Date:        d.String(),
		TimeOfDay:   t.TimeOfDay,
		Recurrence:  t.Recurrence,
		Notes:       t.Notes,
		Status:      status,
	}
}

// monthsBack steps k calendar months back from the anchor, preserving the
// anchor's day-of-month and clamping to the last day of shorter months.
// Clamping never sticks: an anchor on the 31st yields the 30th or 28th/29th
// only in months that lack a 31st.
func monthsBack(anchor Date, k int) Date {
	months := (anchor.Year*12 + int(anchor.Month) - 1) - k
	year := months / 12
	month := time.Month(months%12 + 1)
	day := anchor.Day
	if max := DaysInMonth(year, month); day > max {
		day = max
	}
	return Date{Year: year, Month: month, Day: day}
}

// monthsBetween returns how many whole calendar months separate d from the
// anchor, counting year/month positions only.
func monthsBetween(d, anchor Date) int {
	return (anchor.Year*12 + int(anchor.Month)) - (d.Year*12 + int(d.Month))
}
