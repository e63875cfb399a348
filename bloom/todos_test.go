package bloom

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTodoList(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/todo/user/10", r.URL.Path)
		writeJSON(t, w, []map[string]any{
			{
				"Id":           1,
				"Name":         "Send report",
				"DetailsUrl":   "https://notes/1",
				"DueDate":      "2024-06-15",
				"CreateTime":   "2024-06-10",
				"CompleteTime": nil,
				"Complete":     false,
			},
			{
				"Id":           2,
				"Name":         "Done item",
				"Complete":     true,
				"CompleteTime": "2024-06-12",
			},
		})
	}))
	client.SetUserID(10)

	todos, err := client.Todos.List(context.Background(), 0, 0)
	require.NoError(t, err)
	require.Len(t, todos, 2)

	assert.Equal(t, "Send report", todos[0].Title)
	assert.Equal(t, "Incomplete", todos[0].Status)
	assert.Nil(t, todos[0].CompletedAt)

	assert.Equal(t, "Complete", todos[1].Status)
	require.NotNil(t, todos[1].CompletedAt)
	assert.Equal(t, "2024-06-12", *todos[1].CompletedAt)
}

func TestTodoListMutualExclusion(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	}))

	_, err := client.Todos.List(context.Background(), 10, 123)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not both")
}

func TestTodoCreatePayload(t *testing.T) {
	var gotPayload map[string]any
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/L10/123/todos", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		writeJSON(t, w, map[string]any{
			"Id":         7,
			"Name":       "New todo",
			"DetailsUrl": "https://notes/7",
			"DueDate":    "2024-06-15",
		})
	}))
	client.SetUserID(10)

	todo, err := client.Todos.Create(context.Background(), TodoInput{
		Title:     String("New todo"),
		MeetingID: Int64(123),
		DueDate:   String("2024-06-15"),
		Notes:     String("bring slides"),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(7), todo.ID)
	assert.Equal(t, "Incomplete", todo.Status)
	assert.NotEmpty(t, todo.CreatedAt)

	assert.Equal(t, "New todo", gotPayload["title"])
	assert.Equal(t, float64(10), gotPayload["accountableUserId"])
	assert.Equal(t, "2024-06-15", gotPayload["dueDate"])
	assert.Equal(t, "bring slides", gotPayload["notes"])
}

func TestTodoCreateMissingRequired(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	}))

	_, err := client.Todos.Create(context.Background(), TodoInput{MeetingID: Int64(123)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title is required")
}

func TestTodoCreateManyValidation(t *testing.T) {
	var creates atomic.Int32
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		creates.Add(1)
		writeJSON(t, w, map[string]any{"Id": 1, "Name": "ok"})
	}))
	client.SetUserID(10)

	todos := []TodoInput{
		{Title: String("Valid"), MeetingID: Int64(123)},
		{DueDate: String("2024-06-15")}, // missing title and meeting_id
	}

	result := client.Todos.CreateMany(context.Background(), todos)

	require.Len(t, result.Successful, 1)
	require.Len(t, result.Failed, 1)
	assert.Equal(t, 1, result.Failed[0].Index)
	// Only the first missing field is reported.
	assert.Equal(t, "title is required", result.Failed[0].Message)
	assert.Equal(t, int32(1), creates.Load())
}

func TestTodoComplete(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/todo/5/complete", r.URL.Path)
		require.Equal(t, "true", r.URL.Query().Get("status"))
		w.WriteHeader(http.StatusOK)
	}))

	require.NoError(t, client.Todos.Complete(context.Background(), 5))
}

func TestTodoUpdateRequiresField(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	}))

	err := client.Todos.Update(context.Background(), 5, nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one field")
}
