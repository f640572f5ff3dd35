package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when a request payload is missing
	// required fields or carries values outside their allowed sets.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrPermissionDenied is returned when the access control evaluator
	// denies the requested action for the calling principal.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrWrongPassword is returned on a credential mismatch during login.
	ErrWrongPassword = errors.New("wrong password")

	// ErrUserInactive is returned when a deactivated account attempts to
	// authenticate or presents a still-valid token.
	ErrUserInactive = errors.New("user account is deactivated")

	// ErrTokenIsExpiredOrInvalid normalises every JWT validation failure so
	// callers do not need to inspect low-level parsing errors.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
