package http

import (
	"encoding/json"
	"net/http"

	"github.com/bestbytes/movie-review-api/internal/logger"
	"github.com/bestbytes/movie-review-api/internal/utils"
)

type createListRequest struct {
	Name string `json:"name"`
}

type addToListRequest struct {
	Title string `json:"title"`
}

func (h *Handler) createList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	account, ok := utils.GetAccountFromContext(ctx)
	if !ok {
		log.Err(ErrSessionNotFound).Msg("no account in request context")
		http.Error(w, ErrSessionNotFound.Error(), http.StatusUnauthorized)
		return
	}

	var req createListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.Lists.CreateList(ctx, account.Username, req.Name); err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteMessage(w, "list created", http.StatusCreated)
}

func (h *Handler) addMovieToList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	account, ok := utils.GetAccountFromContext(ctx)
	if !ok {
		log.Err(ErrSessionNotFound).Msg("no account in request context")
		http.Error(w, ErrSessionNotFound.Error(), http.StatusUnauthorized)
		return
	}

	var req addToListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	err := h.services.Lists.AddMovieToList(ctx, account.Username, pathParam(r, "name"), req.Title)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteMessage(w, "movie added to list", http.StatusOK)
}

func (h *Handler) removeMovieFromList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	account, ok := utils.GetAccountFromContext(ctx)
	if !ok {
		log.Err(ErrSessionNotFound).Msg("no account in request context")
		http.Error(w, ErrSessionNotFound.Error(), http.StatusUnauthorized)
		return
	}

	err := h.services.Lists.RemoveMovieFromList(ctx, account.Username, pathParam(r, "name"), pathParam(r, "title"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteMessage(w, "movie removed from list", http.StatusOK)
}

func (h *Handler) lists(w http.ResponseWriter, r *http.Request) {
	owned, err := h.services.Lists.Lists(r.Context(), pathParam(r, "username"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, owned, http.StatusOK)
}
