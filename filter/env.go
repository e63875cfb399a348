package filter

import (
	"time"

	"github.com/getbloomy/bloomgo/bloom"
)

// TodoEnv builds the filter environment for a todo.
func TodoEnv(t bloom.TodoItem) map[string]any {
	completed := t.CompletedAt != nil
	env := map[string]any{
		"ID":        t.ID,
		"Title":     t.Title,
		"NotesURL":  t.NotesURL,
		"DueDate":   t.DueDate,
		"CreatedAt": t.CreatedAt,
		"Status":    t.Status,
		"Completed": completed,
		"overdue": func() bool {
			due := parseDate(t.DueDate)
			return !completed && !due.IsZero() && due.Before(time.Now())
		},
	}
	if t.CompletedAt != nil {
		env["CompletedAt"] = *t.CompletedAt
	}
	return env
}

// GoalEnv builds the filter environment for a goal.
func GoalEnv(g bloom.GoalInfo) map[string]any {
	return map[string]any{
		"ID":           g.ID,
		"UserID":       g.UserID,
		"UserName":     g.UserName,
		"Title":        g.Title,
		"CreatedAt":    g.CreatedAt,
		"DueDate":      g.DueDate,
		"Status":       g.Status,
		"Completed":    g.Status == "Completed",
		"MeetingID":    g.MeetingID,
		"MeetingTitle": g.MeetingTitle,
	}
}

// IssueEnv builds the filter environment for an issue.
func IssueEnv(i bloom.IssueListItem) map[string]any {
	return map[string]any{
		"ID":           i.ID,
		"Title":        i.Title,
		"NotesURL":     i.NotesURL,
		"CreatedAt":    i.CreatedAt,
		"MeetingID":    i.MeetingID,
		"MeetingTitle": i.MeetingTitle,
	}
}

// MeetingEnv builds the filter environment for a meeting.
func MeetingEnv(m bloom.MeetingListItem) map[string]any {
	return map[string]any{
		"ID":    m.ID,
		"Title": m.Title,
	}
}
