package http

import (
	"errors"
	"net/http"

	"github.com/bestbytes/movie-review-api/internal/logger"
	"github.com/bestbytes/movie-review-api/internal/service"
	"github.com/bestbytes/movie-review-api/internal/store"
	"github.com/bestbytes/movie-review-api/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidUsername:    http.StatusBadRequest,
	service.ErrInvalidEmail:       http.StatusBadRequest,
	utils.ErrWeakPassword:         http.StatusBadRequest,
	service.ErrUsernameTaken:      http.StatusConflict,
	service.ErrEmailTaken:         http.StatusConflict,
	service.ErrUserNotFound:       http.StatusNotFound,
	service.ErrInvalidCredentials: http.StatusUnauthorized,
	service.ErrEmailNotVerified:   http.StatusForbidden,
	service.ErrTooManyPenalties:   http.StatusForbidden,

	service.ErrInvalidMovieTitle: http.StatusBadRequest,

	service.ErrEmptyReviewTitle: http.StatusBadRequest,
	service.ErrEmptyReviewText:  http.StatusBadRequest,
	service.ErrDuplicateReview:  http.StatusConflict,
	service.ErrReviewNotFound:   http.StatusNotFound,
	service.ErrNotReviewOwner:   http.StatusForbidden,

	service.ErrEmptyListName:      http.StatusBadRequest,
	service.ErrListAlreadyExists:  http.StatusConflict,
	service.ErrListNotFound:       http.StatusNotFound,
	service.ErrMovieAlreadyInList: http.StatusConflict,
	service.ErrMovieNotInList:     http.StatusNotFound,

	store.ErrMovieAlreadyExists: http.StatusConflict,
	store.ErrMovieNotFound:      http.StatusNotFound,
	store.ErrMetadataMissing:    http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// respondError maps a service or store error to its HTTP status and writes
// it out. Unmapped errors become an opaque 500 so internals never leak.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		log.Err(err).Msg("unexpected error while handling request")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	log.Err(err).Int("status", status).Send()
	http.Error(w, err.Error(), status)
}
