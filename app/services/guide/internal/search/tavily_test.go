package search

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchReturnsSnippets(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/search", r.URL.Path)

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-key", req["api_key"])
		assert.Contains(t, req["query"], "배틀그라운드")

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]string{
				{"content": "권장 사양: RTX 3060"},
				{"content": ""},
				{"content": "16GB RAM"},
			},
		})
	}))
	defer srv.Close()

	c := NewClient(Conf{BaseUrl: srv.URL, APIKey: "test-key"})
	snippets, err := c.Search(context.Background(), "배틀그라운드 시스템 요구사항")
	require.NoError(t, err)
	assert.Equal(t, []string{"권장 사양: RTX 3060", "16GB RAM"}, snippets)
}

func TestSearchNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(Conf{BaseUrl: srv.URL, APIKey: "test-key"})
	_, err := c.Search(context.Background(), "롤")
	assert.Error(t, err)
}
