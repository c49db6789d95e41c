package lookup_patient

import (
	"context"
	"fmt"

	"github.com/mgiudice/ODC-TurnosService/internal/domain"
)

// UseCase use case de búsqueda de paciente por DNI
type UseCase struct {
	client AutomationClient
	logger Logger
}

// NewUseCase crea un nuevo use case de búsqueda de paciente
func NewUseCase(client AutomationClient, logger Logger) *UseCase {
	return &UseCase{
		client: client,
		logger: logger,
	}
}

// Execute ejecuta la búsqueda de paciente.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Validación: el DNI ya llega normalizado (sólo dígitos)
	if len(req.DNI) < domain.MinDNIDigits {
		uc.logger.Warn("LookupPatient: dni too short (%d digits)", len(req.DNI))
		return nil, fmt.Errorf("%w: dni must have at least %d digits", ErrInvalidInput, domain.MinDNIDigits)
	}

	// 2. Llamada al webhook
	resp, err := uc.client.LookupPatient(ctx, req.DNI)
	if err != nil {
		uc.logger.Error("LookupPatient: webhook call failed for dni=%s: %v", req.DNI, err)
		return nil, fmt.Errorf("%w: %v", ErrLookupFailed, err)
	}

	// 3. Sin coincidencia: el controlador decide blanquear los campos
	if !resp.Found {
		uc.logger.Info("LookupPatient: no match for dni=%s", req.DNI)
		return &Response{Found: false}, nil
	}

	// 4. Con coincidencia: normalizamos la ficha a una sola grafía
	patient := mapPatientRecord(resp.Patient)
	uc.logger.Info("LookupPatient: match for dni=%s (nombre=%q)", req.DNI, patient.Nombre)

	return &Response{Found: true, Patient: patient}, nil
}
