package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bestbytes/movie-review-api/internal/service"
	"github.com/bestbytes/movie-review-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGrantPenalty_AsAdmin verifies that the granting admin is taken from
// the session.
func TestGrantPenalty_AsAdmin(t *testing.T) {
	var gotUsername, gotGrantedBy string
	var gotPoints int

	auth := sessionAuth("admin-token", adminAccount)
	auth.grantPenaltyFn = func(_ context.Context, username string, points int, _, grantedBy string) error {
		gotUsername = username
		gotPoints = points
		gotGrantedBy = grantedBy
		return nil
	}
	h := newTestHandler(t, &service.Services{Auth: auth})
	router := h.Init()

	body := jsonBody(t, grantPenaltyRequest{Points: 2, Reason: "spam review"})
	req := httptest.NewRequest(http.MethodPost, "/api/admin/users/alice/penalties", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer admin-token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "alice", gotUsername)
	assert.Equal(t, 2, gotPoints)
	assert.Equal(t, "admin", gotGrantedBy)
}

func TestGrantPenalty_NonPositivePoints(t *testing.T) {
	h := newTestHandler(t, &service.Services{Auth: sessionAuth("admin-token", adminAccount)})
	router := h.Init()

	body := jsonBody(t, grantPenaltyRequest{Points: 0, Reason: "nothing"})
	req := httptest.NewRequest(http.MethodPost, "/api/admin/users/alice/penalties", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer admin-token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGrantPenalty_AsRegularUser(t *testing.T) {
	h := newTestHandler(t, &service.Services{Auth: sessionAuth("user-token", aliceAccount)})
	router := h.Init()

	body := jsonBody(t, grantPenaltyRequest{Points: 1, Reason: "spam"})
	req := httptest.NewRequest(http.MethodPost, "/api/admin/users/alice/penalties", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer user-token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestListPenalties_AsAdmin(t *testing.T) {
	auth := sessionAuth("admin-token", adminAccount)
	auth.penaltiesFn = func(_ context.Context, username string) ([]models.PenaltyGrant, error) {
		return []models.PenaltyGrant{
			{Points: 2, Reason: "spam review", GrantedBy: "admin", IssuedAt: time.Now(), Seq: 1},
		}, nil
	}
	h := newTestHandler(t, &service.Services{Auth: auth})
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/api/admin/users/alice/penalties", nil)
	req.Header.Set("Authorization", "Bearer admin-token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "spam review")
}

func TestListPenalties_UnknownUser(t *testing.T) {
	auth := sessionAuth("admin-token", adminAccount)
	auth.penaltiesFn = func(_ context.Context, _ string) ([]models.PenaltyGrant, error) {
		return nil, service.ErrUserNotFound
	}
	h := newTestHandler(t, &service.Services{Auth: auth})
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/api/admin/users/ghost/penalties", nil)
	req.Header.Set("Authorization", "Bearer admin-token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
