package recommender

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func candidateBody(t *testing.T, text string) []byte {
	t.Helper()
	body, err := json.Marshal(generateResponse{
		Candidates: []candidate{
			{Content: content{Parts: []part{{Text: text}}}},
		},
	})
	require.NoError(t, err)
	return body
}

func TestSuggest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1beta/models/test-model:generateContent", r.URL.Path)
		assert.Equal(t, "secret", r.URL.Query().Get("key"))

		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotEmpty(t, req.Contents)
		assert.Contains(t, req.Contents[0].Parts[0].Text, "Протекает кран")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(candidateBody(t, `{"category":"Plumber","reason":"Leaking tap is a plumbing issue"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret", "test-model", 5*time.Second, nopLogger{})

	got, err := client.Suggest(context.Background(), "Протекает кран на кухне")
	require.NoError(t, err)
	assert.Equal(t, "Plumber", got.Category)
	assert.Equal(t, "Leaking tap is a plumbing issue", got.Reason)
}

func TestSuggestServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, "", "test-model", 5*time.Second, nopLogger{})

	_, err := client.Suggest(context.Background(), "test")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestSuggestMalformedCandidate(t *testing.T) {
	var body []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body)
	}))
	defer server.Close()

	client := NewClient(server.URL, "", "test-model", 5*time.Second, nopLogger{})

	tests := map[string][]byte{
		"empty candidates": []byte(`{"candidates":[]}`),
		"not json text":    candidateBody(t, "plain text, not json"),
		"missing category": candidateBody(t, `{"reason":"no category"}`),
	}
	for name, b := range tests {
		body = b
		_, err := client.Suggest(context.Background(), "test")
		assert.ErrorIs(t, err, ErrInvalidResponse, name)
	}
}

func TestSuggestNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close() // соединение отклоняется

	client := NewClient(server.URL, "", "test-model", 1*time.Second, nopLogger{})

	_, err := client.Suggest(context.Background(), "test")
	assert.ErrorIs(t, err, ErrUnavailable)
}
