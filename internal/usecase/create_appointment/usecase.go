package create_appointment

import (
	"context"
	"errors"

	"github.com/mgiudice/ODC-TurnosService/internal/domain"
	"github.com/mgiudice/ODC-TurnosService/internal/integrations/automation"
)

// msgGenericRejection mensaje genérico cuando el webhook no aportó uno propio
const msgGenericRejection = "No pudimos registrar el turno. Por favor, intentá de nuevo."

// UseCase use case de creación de turno
type UseCase struct {
	client AutomationClient
	logger Logger
}

// NewUseCase crea un nuevo use case de creación de turno
func NewUseCase(client AutomationClient, logger Logger) *UseCase {
	return &UseCase{
		client: client,
		logger: logger,
	}
}

// Execute ejecuta la creación del turno.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: dni=%s, tipo=%s, fecha=%s, hora=%s, nuevo=%t",
		req.DNI, req.TipoTurno, req.Fecha, req.Hora, !req.PatientFound)

	// 1. Validación del formulario completo
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Resolvemos nombre y duración del tipo de turno
	apptType, _ := domain.AppointmentTypeByID(req.TipoTurno)

	// 3. Combinamos fecha y hora en la zona del consultorio
	fechaHora, err := combineDateTime(req.Fecha, req.Hora)
	if err != nil {
		uc.logger.Warn("CreateAppointment: bad fecha/hora: %v", err)
		return nil, err
	}

	// 4. Armamos el payload; las notas médicas en blanco toman su default acá
	payload := &automation.AppointmentRequest{
		DNI:             req.DNI,
		Nombre:          req.Nombre,
		Telefono:        req.Telefono,
		Email:           req.Email,
		ObraSocial:      req.ObraSocial,
		NumeroAfiliado:  req.NumeroAfiliado,
		Alergias:        defaultIfBlank(req.Alergias, domain.DefaultAllergies),
		Antecedentes:    defaultIfBlank(req.Antecedentes, domain.DefaultBackground),
		TipoTurno:       apptType.ID,
		TipoTurnoNombre: apptType.Name,
		DuracionMinutos: apptType.DurationMinutes,
		FechaHora:       fechaHora,
		Timezone:        domain.BusinessTimeZone,
		IsNewPatient:    !req.PatientFound,
	}

	// 5. Enviamos al webhook
	if err := uc.client.CreateAppointment(ctx, payload); err != nil {
		var apiErr *automation.APIError
		if errors.As(err, &apiErr) {
			message := apiErr.Message
			if message == "" {
				message = msgGenericRejection
			}
			uc.logger.Warn("CreateAppointment: rejected by webhook: %s", message)
			return nil, &RejectedError{Message: message}
		}
		uc.logger.Error("CreateAppointment: webhook call failed: %v", err)
		return nil, &RejectedError{Message: msgGenericRejection}
	}

	uc.logger.Info("CreateAppointment: confirmed dni=%s, fechaHora=%s", req.DNI, fechaHora)

	return &Response{
		Fecha:           req.Fecha,
		FechaLabel:      domain.FormatDateLabel(req.Fecha),
		Hora:            req.Hora,
		TipoTurno:       apptType.ID,
		TipoTurnoNombre: apptType.Name,
		FechaHora:       fechaHora,
	}, nil
}

func defaultIfBlank(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
