package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bestbytes/movie-review-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateList(t *testing.T) {
	var gotOwner, gotName string
	lists := &mockListService{
		createFn: func(_ context.Context, username, name string) error {
			gotOwner = username
			gotName = name
			return nil
		},
	}
	h := newTestHandler(t, &service.Services{Lists: lists, Auth: sessionAuth("session-token", aliceAccount)})
	router := h.Init()

	body := jsonBody(t, createListRequest{Name: "watchlist"})
	req := httptest.NewRequest(http.MethodPost, "/api/lists", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer session-token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "alice", gotOwner)
	assert.Equal(t, "watchlist", gotName)
}

func TestCreateList_Conflict(t *testing.T) {
	lists := &mockListService{
		createFn: func(_ context.Context, _, _ string) error { return service.ErrListAlreadyExists },
	}
	h := newTestHandler(t, &service.Services{Lists: lists, Auth: sessionAuth("session-token", aliceAccount)})
	router := h.Init()

	body := jsonBody(t, createListRequest{Name: "watchlist"})
	req := httptest.NewRequest(http.MethodPost, "/api/lists", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer session-token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAddMovieToList(t *testing.T) {
	var gotTitle string
	lists := &mockListService{
		addFn: func(_ context.Context, _, _, title string) error {
			gotTitle = title
			return nil
		},
	}
	h := newTestHandler(t, &service.Services{Lists: lists, Auth: sessionAuth("session-token", aliceAccount)})
	router := h.Init()

	body := jsonBody(t, addToListRequest{Title: "Inception"})
	req := httptest.NewRequest(http.MethodPost, "/api/lists/watchlist/movies", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer session-token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Inception", gotTitle)
}

func TestRemoveMovieFromList_NotInList(t *testing.T) {
	lists := &mockListService{
		removeFn: func(_ context.Context, _, _, _ string) error { return service.ErrMovieNotInList },
	}
	h := newTestHandler(t, &service.Services{Lists: lists, Auth: sessionAuth("session-token", aliceAccount)})
	router := h.Init()

	req := httptest.NewRequest(http.MethodDelete, "/api/lists/watchlist/movies/Ghost", nil)
	req.Header.Set("Authorization", "Bearer session-token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// TestLists_PublicRead verifies that reading another user's lists needs no
// session.
func TestLists_PublicRead(t *testing.T) {
	lists := &mockListService{
		listsFn: func(_ context.Context, username string) (map[string][]string, error) {
			return map[string][]string{"watchlist": {"Inception"}}, nil
		},
	}
	h := newTestHandler(t, &service.Services{Lists: lists, Auth: sessionAuth("", aliceAccount)})
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/api/lists/alice", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Inception")
}
