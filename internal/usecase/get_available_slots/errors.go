package get_available_slots

import "errors"

var (
	// ErrInvalidInput se devuelve ante fecha o tipo de turno inválidos
	ErrInvalidInput = errors.New("invalid input data")

	// ErrUnknownAppointmentType se devuelve cuando el tipo de turno no existe en el catálogo
	ErrUnknownAppointmentType = errors.New("unknown appointment type")
)
