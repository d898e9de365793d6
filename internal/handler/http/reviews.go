package http

import (
	"encoding/json"
	"net/http"

	"github.com/bestbytes/movie-review-api/internal/logger"
	"github.com/bestbytes/movie-review-api/internal/utils"
	"github.com/bestbytes/movie-review-api/models"
)

func (h *Handler) listReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.services.Reviews.ListReviews(r.Context(), pathParam(r, "title"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, reviews, http.StatusOK)
}

func (h *Handler) listReviewsByUser(w http.ResponseWriter, r *http.Request) {
	byMovie, err := h.services.Reviews.ListReviewsByUser(r.Context(), pathParam(r, "username"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, byMovie, http.StatusOK)
}

// addReview creates a review on behalf of the authenticated account. The
// review author always comes from the session, never from the request body.
func (h *Handler) addReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	account, ok := utils.GetAccountFromContext(ctx)
	if !ok {
		log.Err(ErrSessionNotFound).Msg("no account in request context")
		http.Error(w, ErrSessionNotFound.Error(), http.StatusUnauthorized)
		return
	}

	var review models.Review
	if err := json.NewDecoder(r.Body).Decode(&review); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	review.User = account.Username

	if err := h.services.Reviews.AddReview(ctx, pathParam(r, "title"), review); err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, review, http.StatusCreated)
}

func (h *Handler) updateReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	account, ok := utils.GetAccountFromContext(ctx)
	if !ok {
		log.Err(ErrSessionNotFound).Msg("no account in request context")
		http.Error(w, ErrSessionNotFound.Error(), http.StatusUnauthorized)
		return
	}

	var review models.Review
	if err := json.NewDecoder(r.Body).Decode(&review); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	err := h.services.Reviews.UpdateReview(ctx, pathParam(r, "title"), indexParam(r), *account, review)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteMessage(w, "review updated", http.StatusOK)
}

func (h *Handler) deleteReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	account, ok := utils.GetAccountFromContext(ctx)
	if !ok {
		log.Err(ErrSessionNotFound).Msg("no account in request context")
		http.Error(w, ErrSessionNotFound.Error(), http.StatusUnauthorized)
		return
	}

	err := h.services.Reviews.DeleteReview(ctx, pathParam(r, "title"), indexParam(r), *account)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteMessage(w, "review deleted", http.StatusOK)
}
