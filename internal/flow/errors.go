package flow

import "errors"

var (
	// ErrUnknownField se devuelve al editar un campo que no existe en el formulario
	ErrUnknownField = errors.New("unknown form field")

	// ErrFormIncomplete se devuelve al confirmar con campos requeridos vacíos.
	// En este estado NO se llama al webhook.
	ErrFormIncomplete = errors.New("form is incomplete")

	// ErrSessionConfirmed se devuelve al operar sobre una sesión ya confirmada.
	// Confirmado es terminal: sólo una sesión nueva vuelve a empezar.
	ErrSessionConfirmed = errors.New("session already confirmed")

	// ErrSubmitInFlight se devuelve si ya hay una confirmación en curso
	ErrSubmitInFlight = errors.New("submission already in flight")
)
