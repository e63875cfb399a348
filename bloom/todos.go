package bloom

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/getbloomy/bloomgo/bulk"
)

// TodoService handles operations related to todos.
type TodoService struct {
	client *Client
}

// List returns todos for a user or for a meeting; the two filters are
// mutually exclusive. With neither set, the authenticated user's todos are
// returned.
func (s *TodoService) List(ctx context.Context, userID, meetingID int64) ([]TodoItem, error) {
	if userID != 0 && meetingID != 0 {
		return nil, fmt.Errorf("provide either a user ID or a meeting ID, not both")
	}

	var endpoint string
	if meetingID != 0 {
		endpoint = fmt.Sprintf("l10/%d/todos", meetingID)
	} else {
		resolved, err := s.client.resolveUserID(ctx, userID)
		if err != nil {
			return nil, err
		}
		endpoint = fmt.Sprintf("todo/user/%d", resolved)
	}

	var data []wireTodo
	if err := s.client.get(ctx, endpoint, nil, &data); err != nil {
		return nil, err
	}

	todos := make([]TodoItem, 0, len(data))
	for _, w := range data {
		todos = append(todos, todoFromWire(w))
	}
	return todos, nil
}

// Create creates a new todo. Title and MeetingID are required; UserID
// defaults to the authenticated user.
func (s *TodoService) Create(ctx context.Context, in TodoInput) (*TodoItem, error) {
	if in.Title == nil {
		return nil, fmt.Errorf("title is required")
	}
	if in.MeetingID == nil {
		return nil, fmt.Errorf("meeting_id is required")
	}

	userID, err := s.client.resolveUserID(ctx, deref(in.UserID))
	if err != nil {
		return nil, err
	}

	payload := map[string]any{
		"title":             *in.Title,
		"accountableUserId": userID,
	}
	if in.Notes != nil {
		payload["notes"] = *in.Notes
	}
	if in.DueDate != nil {
		payload["dueDate"] = *in.DueDate
	}

	var w wireTodo
	if err := s.client.post(ctx, fmt.Sprintf("L10/%d/todos", *in.MeetingID), payload, &w); err != nil {
		return nil, err
	}

	// The create endpoint does not echo timestamps.
	return &TodoItem{
		ID:        w.ID,
		Title:     w.Name,
		NotesURL:  w.DetailsURL,
		DueDate:   w.DueDate,
		CreatedAt: time.Now().Format(time.RFC3339),
		Status:    "Incomplete",
	}, nil
}

// Complete marks a todo as done.
func (s *TodoService) Complete(ctx context.Context, todoID int64) error {
	params := url.Values{}
	params.Set("status", "true")
	_, err := s.client.doRequest(ctx, http.MethodPost, fmt.Sprintf("todo/%d/complete", todoID), params, nil)
	return err
}

// Update changes a todo's title and/or due date. At least one field must be
// provided.
func (s *TodoService) Update(ctx context.Context, todoID int64, title, dueDate *string) error {
	payload := map[string]any{}
	if title != nil {
		payload["title"] = *title
	}
	if dueDate != nil {
		payload["dueDate"] = *dueDate
	}
	if len(payload) == 0 {
		return fmt.Errorf("at least one field must be provided")
	}

	return s.client.put(ctx, fmt.Sprintf("todo/%d", todoID), payload)
}

// Details retrieves a single todo by ID.
func (s *TodoService) Details(ctx context.Context, todoID int64) (*TodoItem, error) {
	var w wireTodo
	if err := s.client.get(ctx, fmt.Sprintf("todo/%d", todoID), nil, &w); err != nil {
		return nil, err
	}
	todo := todoFromWire(w)
	return &todo, nil
}

// CreateMany creates multiple todos best-effort, one at a time in input
// order. Failed items are reported in the result alongside the successes.
func (s *TodoService) CreateMany(ctx context.Context, todos []TodoInput) bulk.Result[TodoItem] {
	return bulk.RunSequential(ctx, todos, todoRequiredFields, s.createOne)
}

// CreateManyConcurrent is CreateMany with up to maxConcurrent creations in
// flight at once.
func (s *TodoService) CreateManyConcurrent(ctx context.Context, todos []TodoInput, maxConcurrent int) (bulk.Result[TodoItem], error) {
	return bulk.RunConcurrent(ctx, todos, todoRequiredFields, maxConcurrent, s.createOne)
}

func (s *TodoService) createOne(ctx context.Context, in TodoInput) (TodoItem, error) {
	todo, err := s.Create(ctx, in)
	if err != nil {
		return TodoItem{}, err
	}
	return *todo, nil
}
