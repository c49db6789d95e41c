package flow

import (
	"context"

	createAppointment "github.com/mgiudice/ODC-TurnosService/internal/usecase/create_appointment"
	getAvailableSlots "github.com/mgiudice/ODC-TurnosService/internal/usecase/get_available_slots"
	lookupPatient "github.com/mgiudice/ODC-TurnosService/internal/usecase/lookup_patient"
)

// PatientLookupUseCase interfaz del use case de búsqueda de paciente
type PatientLookupUseCase interface {
	Execute(ctx context.Context, req *lookupPatient.Request) (*lookupPatient.Response, error)
}

// SlotsUseCase interfaz del use case de consulta de horarios
type SlotsUseCase interface {
	Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error)
}

// CreateAppointmentUseCase interfaz del use case de creación de turno
type CreateAppointmentUseCase interface {
	Execute(ctx context.Context, req *createAppointment.Request) (*createAppointment.Response, error)
}

// Logger interfaz para logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
