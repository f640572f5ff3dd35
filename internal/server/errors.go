package server

import "errors"

var (
	errNoAddressConfigured = errors.New("no HTTP address configured")
)
