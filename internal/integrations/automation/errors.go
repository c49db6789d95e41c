package automation

import (
	"errors"
	"fmt"
)

var (
	// ErrInternal se devuelve ante errores internos del cliente
	ErrInternal = errors.New("automation client: internal error")

	// ErrInvalidResponse se devuelve cuando el webhook responde algo inesperado
	ErrInvalidResponse = errors.New("automation client: invalid response")

	// ErrUnavailable se devuelve ante fallas de red o timeout
	ErrUnavailable = errors.New("automation client: service unavailable")
)

// APIError es un rechazo explícito del webhook de creación de turnos,
// con el mensaje para el usuario que haya incluido el cuerpo de error.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("automation webhook returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("automation webhook returned status %d: %s", e.StatusCode, e.Message)
}
