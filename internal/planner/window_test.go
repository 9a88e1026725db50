package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowFor(t *testing.T) {
	anchor := mustDate(t, "2025-06-11")

	tests := []struct {
		mode  ViewMode
		start string
		end   string
	}{
		{ViewDay, "2025-06-11", "2025-06-11"},
		{ViewWeek, "2025-06-11", "2025-06-17"},
		{ViewMonth, "2025-06-01", "2025-06-30"},
		{ViewYear, "2025-01-01", "2025-12-31"},
	}
	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			w, err := WindowFor(tt.mode, anchor)
			require.NoError(t, err)
			assert.Equal(t, tt.start, w.Start.String())
			assert.Equal(t, tt.end, w.End.String())
		})
	}
}

func TestWindowForLeapFebruary(t *testing.T) {
	w, err := WindowFor(ViewMonth, mustDate(t, "2024-02-10"))
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", w.End.String())
}

func TestWindowForWeekCrossesMonthBoundary(t *testing.T) {
	w, err := WindowFor(ViewWeek, mustDate(t, "2025-06-28"))
	require.NoError(t, err)
	assert.Equal(t, "2025-07-04", w.End.String())
}

func TestWindowForUnknownMode(t *testing.T) {
	_, err := WindowFor("fortnight", mustDate(t, "2025-06-11"))
	assert.Error(t, err)
}
