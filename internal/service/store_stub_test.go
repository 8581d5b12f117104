package service

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mubarakmsm/myweb/internal/store"
)

// recordedRequest captures what the service sent to the record store.
type recordedRequest struct {
	Method string
	Path   string
	Query  string
	Auth   string
}

// newTestStore spins up a fake record store backend and a client wired to
// it. The handler serves responses; every request is recorded for
// assertions on method, path, query and authorization.
func newTestStore(t *testing.T, handler http.HandlerFunc) (*store.Client, *[]recordedRequest) {
	t.Helper()

	requests := &[]recordedRequest{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*requests = append(*requests, recordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.RawQuery,
			Auth:   r.Header.Get("Authorization"),
		})
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	client, err := store.New(server.URL, "anon-key")
	require.NoError(t, err)
	return client, requests
}
