package create_session

import "github.com/mgiudice/ODC-TurnosService/internal/flow"

// SessionService interfaz del administrador de sesiones
type SessionService interface {
	Create() (string, *flow.Controller)
}

// Logger interfaz para logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
