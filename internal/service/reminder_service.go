package service

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"lastminute/internal/model"
	"lastminute/internal/planner"
	"lastminute/internal/repository"
)

// ReminderService builds human-readable planner digests for daily
// notifications. The digest is just the day view materialized over the
// user's templates, grouped by category.
type ReminderService struct {
	taskRepo *repository.TaskRepository
}

func NewReminderService(taskRepo *repository.TaskRepository) *ReminderService {
	return &ReminderService{taskRepo: taskRepo}
}

// DailyDigest renders today's occurrences for the user as Telegram HTML.
func (s *ReminderService) DailyDigest(ctx context.Context, user model.User, now time.Time) (string, error) {
	today := planner.DateOf(now)
	window, err := planner.WindowFor(planner.ViewDay, today)
	if err != nil {
		return "", err
	}

	tasks, err := s.taskRepo.ListByUser(ctx, user.ID)
	if err != nil {
		return "", err
	}
	templates := make([]planner.Template, 0, len(tasks))
	for i := range tasks {
		tpl, err := tasks[i].Template()
		if err != nil {
			return "", err
		}
		templates = append(templates, tpl)
	}

	occurrences := planner.MaterializeAll(templates, window)
	planner.Sort(occurrences, planner.SortByDate)

	var pending, done []planner.Occurrence
	for _, occ := range occurrences {
		if occ.Status == planner.StatusCompleted {
			done = append(done, occ)
		} else {
			pending = append(pending, occ)
		}
	}

	var builder strings.Builder
	builder.WriteString("📋 <b>LastMinute planner</b>\n")
	builder.WriteString(fmt.Sprintf("🗓 %s\n\n", today))

	builder.WriteString("<b>Due today</b>\n")
	if len(pending) == 0 {
		builder.WriteString("— nothing pending\n")
	} else {
		for _, occ := range pending {
			builder.WriteString(formatOccurrence(occ))
		}
	}

	if len(done) > 0 {
		builder.WriteString("\n✅ <b>Already done</b>\n")
		for _, occ := range done {
			builder.WriteString(formatOccurrence(occ))
		}
	}

	return strings.TrimSpace(builder.String()), nil
}

func formatOccurrence(occ planner.Occurrence) string {
	var sb strings.Builder

	icon := "🟢"
	switch occ.Priority {
	case "high":
		icon = "⚠️"
	case "medium":
		icon = "⏳"
	}
	if occ.Status == planner.StatusCompleted {
		icon = "✅"
	}

	sb.WriteString(fmt.Sprintf("%s %s", icon, html.EscapeString(strings.TrimSpace(occ.Title))))
	if occ.Category != "" {
		sb.WriteString(fmt.Sprintf(" <i>(%s)</i>", html.EscapeString(occ.Category)))
	}
	if occ.TimeOfDay != "" {
		sb.WriteString(fmt.Sprintf(" · %s", occ.TimeOfDay))
	}
	if occ.Recurrence != planner.RecurrenceNone {
		sb.WriteString(" ♻️")
	}
	sb.WriteByte('\n')
	return sb.String()
}
