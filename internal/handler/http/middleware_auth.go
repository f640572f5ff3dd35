package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/rta-cma/camtrack/internal/logger"
	"github.com/rta-cma/camtrack/internal/utils"
)

// auth enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer
// token, and resolves it to a live account via
// [service.AuthService.CurrentUser]. On success the full account is stored
// in the request context under [utils.CurrentUserCtxKey], so downstream
// handlers get the current role and location assignment rather than the
// stale claims baked into the token.
//
// Requests are rejected with 401 Unauthorized when the header is absent or
// malformed, the token fails validation, or the account no longer exists or
// has been deactivated.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.CurrentUser(ctx, tokenString)
		if err != nil {
			respondError(w, r, err)
			return
		}

		ctx = context.WithValue(ctx, utils.CurrentUserCtxKey, user)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value of the form "<scheme> <token>".
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
