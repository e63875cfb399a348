package bloom

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeadlineCreate(t *testing.T) {
	var gotPayload map[string]any

	mux := http.NewServeMux()
	mux.HandleFunc("/L10/123/headlines", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		writeJSON(t, w, map[string]any{"Id": 55, "Name": "Closed the Q2 deal", "DetailsUrl": "https://notes/55"})
	})

	client, _ := newTestClient(t, mux)
	client.SetUserID(10)

	headline, err := client.Headlines.Create(context.Background(), 123, "Closed the Q2 deal", 0, "big one")
	require.NoError(t, err)

	assert.Equal(t, int64(55), headline.ID)
	assert.Equal(t, int64(10), headline.OwnerDetails.ID)
	assert.Equal(t, "Closed the Q2 deal", gotPayload["title"])
	assert.Equal(t, float64(10), gotPayload["ownerId"])
	assert.Equal(t, "big one", gotPayload["notes"])
}

func TestHeadlineDetails(t *testing.T) {
	closed := "2024-06-12"
	mux := http.NewServeMux()
	mux.HandleFunc("/headline/55", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "true", r.URL.Query().Get("Include_Origin"))
		writeJSON(t, w, map[string]any{
			"Id":         55,
			"Name":       "Closed the Q2 deal",
			"DetailsUrl": "https://notes/55",
			"OriginId":   123,
			"Origin":     "Weekly L10",
			"Owner":      map[string]any{"Id": 10, "Name": "Jo Staff"},
			"Archived":   true,
			"CreateTime": "2024-06-01",
			"CloseTime":  closed,
		})
	})

	client, _ := newTestClient(t, mux)

	details, err := client.Headlines.Details(context.Background(), 55)
	require.NoError(t, err)

	assert.Equal(t, MeetingInfo{ID: 123, Title: "Weekly L10"}, details.MeetingDetails)
	assert.Equal(t, OwnerDetails{ID: 10, Name: "Jo Staff"}, details.OwnerDetails)
	assert.True(t, details.Archived)
	require.NotNil(t, details.ClosedAt)
	assert.Equal(t, closed, *details.ClosedAt)
}

func TestHeadlineListMutualExclusion(t *testing.T) {
	client, _ := newTestClient(t, http.NotFoundHandler())

	_, err := client.Headlines.List(context.Background(), 1, 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not both")
}
