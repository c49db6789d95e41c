package lookup_patient

import (
	"context"

	"github.com/mgiudice/ODC-TurnosService/internal/integrations/automation"
)

// AutomationClient interfaz del cliente del webhook de búsqueda de pacientes
type AutomationClient interface {
	LookupPatient(ctx context.Context, dni string) (*automation.PatientLookupResponse, error)
}

// Logger interfaz para logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
