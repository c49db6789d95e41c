package sessions

import "github.com/mgiudice/ODC-TurnosService/internal/flow"

// ControllerFactory construye el controlador de una sesión nueva
type ControllerFactory func() *flow.Controller

// SessionsGauge métrica de sesiones vivas (opcional)
type SessionsGauge interface {
	Inc()
	Dec()
}

// Logger interfaz para logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
