package create_appointment

import "errors"

var (
	// ErrInvalidInput se devuelve cuando el formulario no pasa la validación
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal se devuelve ante errores internos del use case
	ErrInternal = errors.New("usecase: internal error")
)

// RejectedError es un rechazo del webhook de creación de turnos.
// Message es el texto para el usuario: el del cuerpo de error del webhook
// si se pudo parsear, o un mensaje genérico.
type RejectedError struct {
	Message string
}

func (e *RejectedError) Error() string {
	return "appointment rejected: " + e.Message
}
