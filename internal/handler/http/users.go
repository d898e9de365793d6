package http

import (
	"encoding/json"
	"net/http"

	"github.com/bestbytes/movie-review-api/internal/logger"
	"github.com/bestbytes/movie-review-api/internal/utils"
	"github.com/bestbytes/movie-review-api/models"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// registerResponse carries the created account together with the
// verification token. The token is returned here and nowhere else.
type registerResponse struct {
	Account           models.Account `json:"account"`
	VerificationToken string         `json:"verification_token"`
}

type verifyRequest struct {
	Username string `json:"username"`
	Token    string `json:"token"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	account, err := h.services.Auth.Register(ctx, req.Username, req.Email, req.Password)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, registerResponse{
		Account:           account,
		VerificationToken: account.VerificationToken,
	}, http.StatusCreated)
}

func (h *Handler) verifyEmail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req verifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	ok, err := h.services.Auth.VerifyEmail(ctx, req.Username, req.Token)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if !ok {
		log.Warn().Str("username", req.Username).Msg("email verification with wrong token")
		http.Error(w, "invalid verification token", http.StatusBadRequest)
		return
	}

	utils.WriteMessage(w, "email verified", http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	token, err := h.services.Auth.Login(ctx, req.Username, req.Password)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, loginResponse{Token: token}, http.StatusOK)
}

// logout ends the session named by the Authorization header. Logging out an
// unknown or already expired token still succeeds.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		log.Err(ErrEmptyAuthorizationHeader).Send()
		http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
		return
	}

	token, err := getTokenFromAuthHeader(authHeader)
	if err != nil {
		log.Err(err).Send()
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	h.services.Auth.Logout(ctx, token)

	utils.WriteMessage(w, "logged out", http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	account, ok := utils.GetAccountFromContext(r.Context())
	if !ok {
		log.Err(ErrSessionNotFound).Msg("no account in request context")
		http.Error(w, ErrSessionNotFound.Error(), http.StatusUnauthorized)
		return
	}

	utils.WriteJSON(w, account, http.StatusOK)
}
