package create_appointment

import (
	"fmt"
	"time"

	"github.com/mgiudice/ODC-TurnosService/internal/domain"
	"github.com/mgiudice/ODC-TurnosService/pkg/types"
)

// validateRequest valida el formulario completo antes de enviar el turno.
// Los campos requeridos son dni, nombre, telefono, tipoTurno, fecha y hora;
// dni y telefono además deben cumplir un mínimo de dígitos.
func validateRequest(req *Request) error {
	if req.DNI == "" || req.Nombre == "" || req.Telefono == "" ||
		req.TipoTurno == "" || req.Fecha == "" || req.Hora == "" {
		return fmt.Errorf("%w: missing required fields", ErrInvalidInput)
	}

	if domain.CountDigits(req.DNI) < domain.MinDNIDigits {
		return fmt.Errorf("%w: dni must have at least %d digits", ErrInvalidInput, domain.MinDNIDigits)
	}
	if domain.CountDigits(req.Telefono) < domain.MinPhoneDigits {
		return fmt.Errorf("%w: telefono must have at least %d digits", ErrInvalidInput, domain.MinPhoneDigits)
	}

	if _, err := time.Parse(domain.DateFormat, req.Fecha); err != nil {
		return fmt.Errorf("%w: fecha must be YYYY-MM-DD", ErrInvalidInput)
	}
	if _, err := types.NewTimeStringFromString(req.Hora); err != nil {
		return fmt.Errorf("%w: hora must be HH:MM", ErrInvalidInput)
	}

	if _, ok := domain.AppointmentTypeByID(req.TipoTurno); !ok {
		return fmt.Errorf("%w: unknown appointment type %q", ErrInvalidInput, req.TipoTurno)
	}

	return nil
}
