package http

import (
	"errors"
	"net/http"

	"github.com/rta-cma/camtrack/internal/logger"
	"github.com/rta-cma/camtrack/internal/query"
	"github.com/rta-cma/camtrack/internal/service"
	"github.com/rta-cma/camtrack/internal/store"
)

// httpStatus translates a service or store error into the HTTP status code
// and client-facing message for it. Anything unrecognised is reported as an
// opaque 500 so internal details never leak into responses.
func httpStatus(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrInvalidDataProvided),
		errors.Is(err, query.ErrInvalidWindow),
		errors.Is(err, query.ErrInvalidSortOrder):
		return http.StatusBadRequest, "invalid data provided"
	case errors.Is(err, store.ErrReferencedRowMissing):
		return http.StatusBadRequest, "referenced record does not exist"
	case errors.Is(err, service.ErrWrongPassword):
		return http.StatusUnauthorized, "invalid login/password"
	case errors.Is(err, service.ErrUserInactive):
		return http.StatusUnauthorized, "account is deactivated"
	case errors.Is(err, service.ErrTokenIsExpiredOrInvalid):
		return http.StatusUnauthorized, "token is expired or invalid"
	case errors.Is(err, service.ErrPermissionDenied):
		return http.StatusForbidden, "permission denied"
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, store.ErrAlreadyExists):
		return http.StatusConflict, "already exists"
	default:
		return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
	}
}

// respondError logs the error and writes the mapped status and message.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := httpStatus(err)
	logger.FromRequest(r).Err(err).Int("status", status).Msg(message)
	http.Error(w, message, status)
}
