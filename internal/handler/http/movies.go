package http

import (
	"encoding/json"
	"net/http"

	"github.com/bestbytes/movie-review-api/internal/logger"
	"github.com/bestbytes/movie-review-api/internal/utils"
	"github.com/bestbytes/movie-review-api/models"
)

func (h *Handler) listMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := h.services.Movies.ListMovies(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, movies, http.StatusOK)
}

func (h *Handler) getMovie(w http.ResponseWriter, r *http.Request) {
	movie, err := h.services.Movies.GetMovie(r.Context(), pathParam(r, "title"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, movie, http.StatusOK)
}

func (h *Handler) searchMovies(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var filter models.MovieFilter
	if err := json.NewDecoder(r.Body).Decode(&filter); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	movies, err := h.services.Movies.SearchMovies(r.Context(), filter)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, movies, http.StatusOK)
}

func (h *Handler) createMovie(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var movie models.Movie
	if err := json.NewDecoder(r.Body).Decode(&movie); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.Movies.CreateMovie(r.Context(), movie); err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, movie, http.StatusCreated)
}

func (h *Handler) updateMovie(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var movie models.Movie
	if err := json.NewDecoder(r.Body).Decode(&movie); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updated, err := h.services.Movies.UpdateMovie(r.Context(), pathParam(r, "title"), movie)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteMovie(w http.ResponseWriter, r *http.Request) {
	if err := h.services.Movies.DeleteMovie(r.Context(), pathParam(r, "title")); err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteMessage(w, "movie deleted", http.StatusOK)
}
