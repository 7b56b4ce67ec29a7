package status_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/habitd/habitd/internal/status"
)

type fakeStorage struct {
	mu     sync.Mutex
	checks []status.Check
}

func (f *fakeStorage) Insert(_ context.Context, check status.Check) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.checks = append(f.checks, check)
	return nil
}

func (f *fakeStorage) List(_ context.Context) ([]status.Check, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]status.Check(nil), f.checks...), nil
}

func newStatusServer(t *testing.T) (*httptest.Server, *fakeStorage) {
	t.Helper()
	storage := &fakeStorage{}

	r := chi.NewRouter()
	r.Mount("/status", status.NewModule(storage).Handle())
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, storage
}

func TestStatusEndpoints(t *testing.T) {
	t.Parallel()
	srv, storage := newStatusServer(t)

	t.Run("empty list renders as array", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/status")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var envelope struct {
			Data []status.Check `json:"data"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
		assert.NotNil(t, envelope.Data)
		assert.Empty(t, envelope.Data)
	})

	t.Run("create records a timestamped check", func(t *testing.T) {
		resp, err := http.Post(srv.URL+"/status", "application/json",
			bytes.NewReader([]byte(`{"client_name":"uptime-bot"}`)))
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var envelope struct {
			Data status.Check `json:"data"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
		assert.NotEmpty(t, envelope.Data.ID)
		assert.Equal(t, "uptime-bot", envelope.Data.ClientName)
		assert.False(t, envelope.Data.Timestamp.IsZero())

		require.Len(t, storage.checks, 1)
	})

	t.Run("missing client name fails validation", func(t *testing.T) {
		resp, err := http.Post(srv.URL+"/status", "application/json",
			bytes.NewReader([]byte(`{}`)))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
