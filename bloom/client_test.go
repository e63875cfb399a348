package bloom

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient("test-key", WithBaseURL(server.URL), WithLogger(zerolog.Nop()))
	require.NoError(t, err)
	return client, server
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestNewClient(t *testing.T) {
	t.Run("missing API key", func(t *testing.T) {
		_, err := NewClient("")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidConfig)
		assert.Contains(t, err.Error(), "API key is required")
	})

	t.Run("defaults", func(t *testing.T) {
		client, err := NewClient("test-key")
		require.NoError(t, err)
		assert.Equal(t, DefaultBaseURL, client.baseURL)
		assert.Equal(t, 30*time.Second, client.httpClient.Timeout)
		assert.NotNil(t, client.Todos)
		assert.NotNil(t, client.Goals)
		assert.NotNil(t, client.Meetings)
	})

	t.Run("with options", func(t *testing.T) {
		httpClient := &http.Client{Timeout: 5 * time.Second}
		client, err := NewClient("test-key",
			WithBaseURL("https://example.com/api/v1/"),
			WithHTTPClient(httpClient),
		)
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/api/v1", client.baseURL)
		assert.Equal(t, httpClient, client.httpClient)
	})
}

func TestDoRequestAuth(t *testing.T) {
	var gotAuth, gotAccept string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		writeJSON(t, w, map[string]any{"Id": 1})
	}))

	require.NoError(t, client.TestConnection(context.Background()))
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "application/json", gotAccept)
}

func TestDoRequestAPIError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"no such todo"}`))
	}))

	_, err := client.Todos.Details(context.Background(), 99)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.True(t, apiErr.IsNotFound())
	assert.False(t, apiErr.IsUnauthorized())
	assert.Contains(t, apiErr.Body, "no such todo")
}

func TestAPIErrorClassification(t *testing.T) {
	tests := []struct {
		status       int
		notFound     bool
		unauthorized bool
		serverError  bool
	}{
		{404, true, false, false},
		{401, false, true, false},
		{403, false, true, false},
		{500, false, false, true},
		{503, false, false, true},
	}

	for _, tt := range tests {
		err := &APIError{StatusCode: tt.status, Message: http.StatusText(tt.status)}
		assert.Equal(t, tt.notFound, err.IsNotFound(), "status %d", tt.status)
		assert.Equal(t, tt.unauthorized, err.IsUnauthorized(), "status %d", tt.status)
		assert.Equal(t, tt.serverError, err.IsServerError(), "status %d", tt.status)
		assert.Contains(t, err.Error(), "bloom API error")
	}
}

func TestTestConnectionFailure(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	err := client.TestConnection(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoConnection)
}
