package controllers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPages(t *testing.T) *http.ServeMux {
	t.Helper()
	pc, err := NewPageController(&mockLogger{})
	require.NoError(t, err)

	mux := http.NewServeMux()
	mux.HandleFunc("/", pc.Index)
	for _, p := range pages {
		mux.Handle("/"+p.Name, pc.Page(p.Name))
	}
	return mux
}

func TestIndex_RedirectsToDefaultPage(t *testing.T) {
	rr := get(t, newTestPages(t), "/")

	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/presence_weekday", rr.Header().Get("Location"))
}

func TestIndex_UnknownPath(t *testing.T) {
	rr := get(t, newTestPages(t), "/nope")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestPage_Renders(t *testing.T) {
	mux := newTestPages(t)

	for _, p := range pages {
		rr := get(t, mux, "/"+p.Name)
		assert.Equal(t, http.StatusOK, rr.Code, p.Name)
		assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
		assert.Contains(t, rr.Body.String(), "<title>Presence analyzer | "+p.Title+"</title>")
		assert.Contains(t, rr.Body.String(), "/api/v1/users")
	}
}

func TestPage_UnknownName(t *testing.T) {
	pc, err := NewPageController(&mockLogger{})
	require.NoError(t, err)

	rr := get(t, pc.Page("missing"), "/missing")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
