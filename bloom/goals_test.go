package bloom

import (
	"context"
	"fmt"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoalList(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/rocks/user/10", r.URL.Path)
		require.Equal(t, "true", r.URL.Query().Get("include_origin"))
		writeJSON(t, w, []map[string]any{
			{
				"Id":         1,
				"Name":       "Ship the feature",
				"CreateTime": "2024-06-01",
				"DueDate":    "2024-09-01",
				"Complete":   false,
				"Owner":      map[string]any{"Id": 10, "Name": "Jo Staff"},
				"Origins":    []map[string]any{{"Id": 123, "Name": "Weekly L10"}},
			},
			{
				"Id":       2,
				"Name":     "Done goal",
				"Complete": true,
				"Owner":    map[string]any{"Id": 10, "Name": "Jo Staff"},
			},
		})
	}))
	client.SetUserID(10)

	goals, err := client.Goals.List(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, goals, 2)

	assert.Equal(t, int64(1), goals[0].ID)
	assert.Equal(t, "Ship the feature", goals[0].Title)
	assert.Equal(t, "Incomplete", goals[0].Status)
	assert.Equal(t, int64(123), goals[0].MeetingID)
	assert.Equal(t, "Weekly L10", goals[0].MeetingTitle)

	assert.Equal(t, "Completed", goals[1].Status)
	assert.Zero(t, goals[1].MeetingID)
}

func goalCreateHandler(t *testing.T, creates *atomic.Int32, identityLookups *atomic.Int32) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/users/mine":
			if identityLookups != nil {
				identityLookups.Add(1)
			}
			writeJSON(t, w, map[string]any{"Id": 10})
		case r.Method == http.MethodPost:
			n := creates.Add(1)
			writeJSON(t, w, map[string]any{
				"Id":         400 + n,
				"CreateTime": "2024-06-01",
				"Completion": 0,
				"Owner":      map[string]any{"Id": 10, "Name": "Jo Staff"},
				"Origins":    []map[string]any{{"Id": 123, "Name": "Weekly L10"}},
			})
		default:
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
	})
}

func TestGoalCreateManyAllSuccess(t *testing.T) {
	var creates, identityLookups atomic.Int32
	client, _ := newTestClient(t, goalCreateHandler(t, &creates, &identityLookups))

	goals := []GoalInput{
		{Title: String("Q1 revenue"), MeetingID: Int64(123)},
		{Title: String("Launch"), MeetingID: Int64(123), UserID: Int64(10)},
	}

	result := client.Goals.CreateMany(context.Background(), goals)

	require.Len(t, result.Successful, 2)
	assert.Empty(t, result.Failed)
	assert.Equal(t, "Q1 revenue", result.Successful[0].Title)
	assert.Equal(t, "Launch", result.Successful[1].Title)
	assert.Equal(t, int64(123), result.Successful[0].MeetingID)
	assert.Equal(t, "Weekly L10", result.Successful[0].MeetingTitle)
	assert.Equal(t, int32(2), creates.Load())

	// The identity cache means a batch resolves the acting user once.
	assert.Equal(t, int32(1), identityLookups.Load())
}

func TestGoalCreateManyValidation(t *testing.T) {
	var creates atomic.Int32
	client, _ := newTestClient(t, goalCreateHandler(t, &creates, nil))
	client.SetUserID(10)

	goals := []GoalInput{
		{Title: String("Valid"), MeetingID: Int64(123)},
		{MeetingID: Int64(123)}, // missing title
		{Title: String("No meeting")},
	}

	result := client.Goals.CreateMany(context.Background(), goals)

	require.Len(t, result.Successful, 1)
	require.Len(t, result.Failed, 2)
	assert.Equal(t, 1, result.Failed[0].Index)
	assert.Contains(t, result.Failed[0].Message, "title")
	assert.Equal(t, 2, result.Failed[1].Index)
	assert.Contains(t, result.Failed[1].Message, "meeting_id")

	// Invalid items never reach the API.
	assert.Equal(t, int32(1), creates.Load())
}

func TestGoalCreateManyEmptyBatch(t *testing.T) {
	var requests atomic.Int32
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		writeJSON(t, w, map[string]any{"Id": 1})
	}))

	result := client.Goals.CreateMany(context.Background(), nil)

	assert.Empty(t, result.Successful)
	assert.Empty(t, result.Failed)
	// No create calls and no identity lookup.
	assert.Zero(t, requests.Load())
}

func TestGoalCreateManyConcurrent(t *testing.T) {
	var creates atomic.Int32
	client, _ := newTestClient(t, goalCreateHandler(t, &creates, nil))
	client.SetUserID(10)

	goals := make([]GoalInput, 6)
	for i := range goals {
		goals[i] = GoalInput{Title: String(fmt.Sprintf("Goal %d", i)), MeetingID: Int64(123)}
	}

	result, err := client.Goals.CreateManyConcurrent(context.Background(), goals, 3)
	require.NoError(t, err)

	require.Len(t, result.Successful, 6)
	assert.Empty(t, result.Failed)
	for i, goal := range result.Successful {
		assert.Equal(t, fmt.Sprintf("Goal %d", i), goal.Title)
	}

	_, err = client.Goals.CreateManyConcurrent(context.Background(), goals, 0)
	require.Error(t, err)
}

func TestGoalUpdateStatus(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/rocks/9", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	client.SetUserID(10)

	status := GoalStatusOnTrack
	err := client.Goals.Update(context.Background(), 9, GoalUpdate{Status: &status})
	require.NoError(t, err)

	bad := GoalStatus("sideways")
	err = client.Goals.Update(context.Background(), 9, GoalUpdate{Status: &bad})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid status")
}
