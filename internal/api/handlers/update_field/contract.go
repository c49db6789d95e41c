package update_field

import "github.com/mgiudice/ODC-TurnosService/internal/flow"

// SessionService interfaz del administrador de sesiones
type SessionService interface {
	Get(id string) (*flow.Controller, error)
}

// Validator interfaz de validación de DTOs
type Validator interface {
	Validate(i interface{}) error
	FormatValidationErrors(err error) map[string]string
}

// Logger interfaz para logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
