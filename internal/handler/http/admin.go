package http

import (
	"encoding/json"
	"net/http"

	"github.com/bestbytes/movie-review-api/internal/logger"
	"github.com/bestbytes/movie-review-api/internal/utils"
)

type grantPenaltyRequest struct {
	Points int    `json:"points"`
	Reason string `json:"reason"`
}

// grantPenalty appends a penalty grant to the target account's ledger.
// The granting admin is taken from the session, not from the body.
func (h *Handler) grantPenalty(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	admin, ok := utils.GetAccountFromContext(ctx)
	if !ok {
		log.Err(ErrSessionNotFound).Msg("no account in request context")
		http.Error(w, ErrSessionNotFound.Error(), http.StatusUnauthorized)
		return
	}

	var req grantPenaltyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	if req.Points <= 0 {
		log.Warn().Int("points", req.Points).Msg("penalty grant with non-positive points")
		http.Error(w, "points must be positive", http.StatusBadRequest)
		return
	}

	username := pathParam(r, "username")
	err := h.services.Auth.GrantPenalty(ctx, username, req.Points, req.Reason, admin.Username)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteMessage(w, "penalty granted", http.StatusCreated)
}

func (h *Handler) listPenalties(w http.ResponseWriter, r *http.Request) {
	grants, err := h.services.Auth.Penalties(r.Context(), pathParam(r, "username"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, grants, http.StatusOK)
}
