package get_available_slots

import "context"

// AutomationClient interfaz del cliente del webhook de disponibilidad
type AutomationClient interface {
	GetAvailableSlots(ctx context.Context, fecha string, durationMinutes int) ([]string, error)
}

// Logger interfaz para logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
