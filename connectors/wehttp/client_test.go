package wehttp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func respond(status int, body string, requests *[]*http.Request) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*requests = append(*requests, r)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
}

func fetchesSeed(t *testing.T) {
	var requests []*http.Request
	server := respond(http.StatusOK, "14\n", &requests)
	defer server.Close()

	seed, err := NewSeedClient(server.URL+"/", 0).Seed(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 14, seed)

	require.Len(t, requests, 1)
	assert.Equal(t, "/api/counter", requests[0].URL.Path)
	assert.Equal(t, "20", requests[0].URL.Query().Get("maxNumber"))
	assert.Equal(t, http.MethodGet, requests[0].Method)
}

func treatsNullAsZero(t *testing.T) {
	var requests []*http.Request
	server := respond(http.StatusOK, "null", &requests)
	defer server.Close()

	seed, err := NewSeedClient(server.URL, 0).Seed(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, seed)
}

func truncatesFractionalSeed(t *testing.T) {
	for body, expected := range map[string]int{"14.5": 14, "-2.7": -2, "3e1": 30} {
		var requests []*http.Request
		server := respond(http.StatusOK, body, &requests)

		seed, err := NewSeedClient(server.URL, 0).Seed(context.Background())
		server.Close()

		require.NoError(t, err, body)
		assert.Equal(t, expected, seed, body)
	}
}

func failsOnErrorStatus(t *testing.T) {
	var requests []*http.Request
	server := respond(http.StatusInternalServerError, `{"message": "boom"}`, &requests)
	defer server.Close()

	_, err := NewSeedClient(server.URL, 0).Seed(context.Background())
	assert.Equal(t, StatusError{StatusCode: http.StatusInternalServerError}, err)
	assert.Len(t, requests, 1)
}

func failsOnMalformedBody(t *testing.T) {
	var requests []*http.Request
	server := respond(http.StatusOK, "eleven", &requests)
	defer server.Close()

	_, err := NewSeedClient(server.URL, 0).Seed(context.Background())
	assert.Error(t, err)
}

func failsOnNetworkError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	endpoint := server.URL
	server.Close()

	_, err := NewSeedClient(endpoint, 0).Seed(context.Background())
	assert.Error(t, err)
}

func TestSeedClient(t *testing.T) {
	t.Run("fetches a seed", fetchesSeed)
	t.Run("treats null as zero", treatsNullAsZero)
	t.Run("truncates a fractional seed", truncatesFractionalSeed)
	t.Run("fails on an error status", failsOnErrorStatus)
	t.Run("fails on a malformed body", failsOnMalformedBody)
	t.Run("fails on a network error", failsOnNetworkError)
}
