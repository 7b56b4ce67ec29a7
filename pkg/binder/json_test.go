package binder_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/habitd/habitd/pkg/binder"
)

type createRequest struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func newJSONRequest(t *testing.T, body string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestJSON(t *testing.T) {
	t.Parallel()
	bind := binder.JSON()

	t.Run("valid body", func(t *testing.T) {
		var v createRequest
		err := bind(newJSONRequest(t, `{"name":"reading","count":3}`), &v)
		require.NoError(t, err)
		assert.Equal(t, "reading", v.Name)
		assert.Equal(t, 3, v.Count)
	})

	t.Run("missing content type", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
		var v createRequest
		err := bind(req, &v)
		require.ErrorIs(t, err, binder.ErrMissingContentType)
	})

	t.Run("wrong content type", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "text/plain")
		var v createRequest
		err := bind(req, &v)
		require.ErrorIs(t, err, binder.ErrUnsupportedMediaType)
	})

	t.Run("content type with charset", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"x"}`))
		req.Header.Set("Content-Type", "application/json; charset=utf-8")
		var v createRequest
		require.NoError(t, bind(req, &v))
	})

	t.Run("empty body", func(t *testing.T) {
		var v createRequest
		err := bind(newJSONRequest(t, ""), &v)
		require.ErrorIs(t, err, binder.ErrFailedToParseJSON)
	})

	t.Run("unknown field", func(t *testing.T) {
		var v createRequest
		err := bind(newJSONRequest(t, `{"name":"x","bogus":true}`), &v)
		require.ErrorIs(t, err, binder.ErrFailedToParseJSON)
	})

	t.Run("trailing data", func(t *testing.T) {
		var v createRequest
		err := bind(newJSONRequest(t, `{"name":"x"}{"name":"y"}`), &v)
		require.ErrorIs(t, err, binder.ErrFailedToParseJSON)
	})
}

func TestPath(t *testing.T) {
	t.Parallel()
	bind := binder.Path()

	type pathRequest struct {
		HabitID string `path:"habit_id"`
	}

	t.Run("binds route param", func(t *testing.T) {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("habit_id", "h1")

		req := httptest.NewRequest(http.MethodGet, "/habits/completions/h1", nil)
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

		var v pathRequest
		require.NoError(t, bind(req, &v))
		assert.Equal(t, "h1", v.HabitID)
	})

	t.Run("no route context is a no-op", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		var v pathRequest
		require.NoError(t, bind(req, &v))
		assert.Empty(t, v.HabitID)
	})
}
