package bloom

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserDetails(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/10", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]any{"Id": 10, "Name": "Jo Staff", "ImageUrl": "/img/10"})
	})
	mux.HandleFunc("/users/10/directreports", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, []map[string]any{{"Id": 11, "Name": "Alex Lead"}})
	})
	mux.HandleFunc("/users/10/seats", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, []map[string]any{
			{"Group": map[string]any{"Position": map[string]any{"Id": 5, "Name": "Engineering Manager"}}},
		})
	})

	client, _ := newTestClient(t, mux)

	user, err := client.Users.Details(context.Background(), 10, true, true)
	require.NoError(t, err)

	assert.Equal(t, "Jo Staff", user.Name)
	require.Len(t, user.DirectReports, 1)
	assert.Equal(t, "Alex Lead", user.DirectReports[0].Name)
	require.Len(t, user.Positions, 1)
	assert.Equal(t, Position{ID: 5, Name: "Engineering Manager"}, user.Positions[0])
}

func TestUserSearch(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/search/user", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "jo", r.URL.Query().Get("term"))
		writeJSON(t, w, []map[string]any{
			{"Id": 10, "Name": "Jo Staff", "Email": "jo@example.com", "OrganizationId": 3},
		})
	})

	client, _ := newTestClient(t, mux)

	results, err := client.Users.Search(context.Background(), "jo")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "jo@example.com", results[0].Email)
	assert.Equal(t, int64(3), results[0].OrganizationID)
}

func TestUserAllSkipsPlaceholders(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/search/all", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "%", r.URL.Query().Get("term"))
		writeJSON(t, w, []map[string]any{
			{"Id": 10, "Name": "Jo Staff", "ResultType": "User", "ImageUrl": "/img/10"},
			{"Id": 11, "Name": "Ghost", "ResultType": "User", "ImageUrl": "/i/userplaceholder"},
			{"Id": 12, "Name": "Weekly L10", "ResultType": "Meeting"},
		})
	})

	client, _ := newTestClient(t, mux)

	users, err := client.Users.All(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, int64(10), users[0].ID)

	withPlaceholders, err := client.Users.All(context.Background(), true)
	require.NoError(t, err)
	assert.Len(t, withPlaceholders, 2)
}
