package sessions

import "errors"

var (
	// ErrSessionNotFound se devuelve cuando la sesión no existe o expiró
	ErrSessionNotFound = errors.New("session not found")
)
