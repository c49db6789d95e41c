package get_available_slots

import (
	"context"

	"github.com/mgiudice/ODC-TurnosService/internal/domain"
)

// UseCase use case de consulta de horarios disponibles
type UseCase struct {
	client AutomationClient
	logger Logger
}

// NewUseCase crea un nuevo use case de consulta de horarios
func NewUseCase(client AutomationClient, logger Logger) *UseCase {
	return &UseCase{
		client: client,
		logger: logger,
	}
}

// Execute ejecuta la consulta de horarios disponibles.
// Una falla del webhook NO es un error para el caller: se degrada a lista
// vacía ("no hay horarios"), a diferencia de la búsqueda de paciente que
// sí muestra un banner de error.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Validación de entrada
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Resolvemos la duración desde el catálogo de tipos de turno
	apptType, ok := domain.AppointmentTypeByID(req.TipoTurno)
	if !ok {
		uc.logger.Warn("GetAvailableSlots: unknown appointment type %q", req.TipoTurno)
		return nil, ErrUnknownAppointmentType
	}

	uc.logger.Info("GetAvailableSlots: fecha=%s, tipo=%s, duration=%d",
		req.Fecha, req.TipoTurno, apptType.DurationMinutes)

	// 3. Llamada al webhook, con degradación silenciosa
	slots, err := uc.client.GetAvailableSlots(ctx, req.Fecha, apptType.DurationMinutes)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: webhook call failed for fecha=%s: %v, degrading to empty list",
			req.Fecha, err)
		return &Response{
			Fecha:           req.Fecha,
			TipoTurno:       req.TipoTurno,
			DurationMinutes: apptType.DurationMinutes,
			Slots:           []string{},
			Degraded:        true,
		}, nil
	}

	uc.logger.Info("GetAvailableSlots: %d slots for fecha=%s, tipo=%s", len(slots), req.Fecha, req.TipoTurno)

	return &Response{
		Fecha:           req.Fecha,
		TipoTurno:       req.TipoTurno,
		DurationMinutes: apptType.DurationMinutes,
		Slots:           slots,
	}, nil
}
