// Package http implements the HTTP transport layer of the movie-review
// backend. It provides middleware, route handlers, and request/response
// utilities for the REST API. Authentication, logging, and tracing concerns
// are all handled at this layer before requests are forwarded to the service
// layer.
package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/bestbytes/movie-review-api/internal/logger"
	"github.com/bestbytes/movie-review-api/internal/utils"
	"github.com/bestbytes/movie-review-api/models"
)

// auth is an HTTP middleware that enforces session-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// resolves it via the auth service, and on success stores the authenticated
// account in the request context under [utils.AccountCtxKey] before
// delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized in the following cases:
//   - The "Authorization" header is absent ([ErrEmptyAuthorizationHeader]).
//   - The header value cannot be parsed as a bearer token
//     ([ErrInvalidAuthorizationHeader] or [ErrEmptyToken]).
//   - The token does not map to a live session ([ErrSessionNotFound]), which
//     covers both unknown and lazily expired tokens.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
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

		ctx := r.Context()
		account, ok := h.services.Auth.ResolveSession(ctx, token)
		if !ok {
			log.Err(ErrSessionNotFound).Send()
			http.Error(w, ErrSessionNotFound.Error(), http.StatusUnauthorized)
			return
		}

		// Store the resolved account in the context so that downstream
		// handlers can retrieve it without another session lookup.
		ctx = context.WithValue(ctx, utils.AccountCtxKey, account)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireAdmin rejects authenticated requests whose account does not carry
// the admin role. Must be chained after [Handler.auth].
func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		account, ok := utils.GetAccountFromContext(r.Context())
		if !ok {
			log.Err(ErrSessionNotFound).Msg("admin check without authenticated account")
			http.Error(w, ErrSessionNotFound.Error(), http.StatusUnauthorized)
			return
		}

		if account.Role != models.RoleAdmin {
			log.Err(ErrAdminRequired).Str("username", account.Username).Send()
			http.Error(w, ErrAdminRequired.Error(), http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value.
//
// The header is expected to follow the standard format:
//
//	Authorization: <scheme> <token>
//
// It returns the following sentinel errors:
//   - [ErrInvalidAuthorizationHeader] if the header contains fewer than
//     two space-separated parts (i.e. the token is missing entirely).
//   - [ErrEmptyToken] if the second part exists but is an empty string.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	token := parts[1]
	if token == "" {
		return "", ErrEmptyToken
	}

	return token, nil
}
