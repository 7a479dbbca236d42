package mvg

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientFetch(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"type":"INCIDENT","title":"ok"}]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 2*time.Second)
	body, err := c.Fetch(context.Background())
	require.NoError(t, err)
	assert.JSONEq(t, `[{"type":"INCIDENT","title":"ok"}]`, string(body))
}

func TestClientFetchNonOKStatus(t *testing.T) {
	t.Parallel()

	codes := []int{http.StatusNotFound, http.StatusInternalServerError, http.StatusBadGateway}
	for _, code := range codes {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(code)
		}))

		c := NewClient(srv.URL, 2*time.Second)
		_, err := c.Fetch(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "HTTP")
		assert.Contains(t, err.Error(), srv.URL)

		srv.Close()
	}
}

func TestClientFetchConnectionRefused(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewClient(url, 2*time.Second)
	_, err := c.Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch")
}

func TestClientFetchContextCanceled(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(time.Second)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewClient(srv.URL, 2*time.Second)
	_, err := c.Fetch(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
