package create_appointment

import (
	"context"

	"github.com/mgiudice/ODC-TurnosService/internal/integrations/automation"
)

// AutomationClient interfaz del cliente del webhook de creación de turnos
type AutomationClient interface {
	CreateAppointment(ctx context.Context, appointment *automation.AppointmentRequest) error
}

// Logger interfaz para logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
