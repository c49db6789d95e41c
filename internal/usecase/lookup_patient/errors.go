package lookup_patient

import "errors"

var (
	// ErrInvalidInput se devuelve cuando el DNI no cumple el mínimo de dígitos
	ErrInvalidInput = errors.New("invalid input data")

	// ErrLookupFailed se devuelve cuando el webhook falla (red, timeout,
	// status no exitoso). El usuario puede reintentar tipeando de nuevo.
	ErrLookupFailed = errors.New("patient lookup failed")
)
