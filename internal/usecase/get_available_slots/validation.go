package get_available_slots

import (
	"fmt"
	"time"

	"github.com/mgiudice/ODC-TurnosService/internal/domain"
)

// validateRequest valida los datos de entrada de la consulta
func validateRequest(req *Request) error {
	if req.Fecha == "" {
		return fmt.Errorf("%w: fecha is required", ErrInvalidInput)
	}
	if _, err := time.Parse(domain.DateFormat, req.Fecha); err != nil {
		return fmt.Errorf("%w: fecha must be YYYY-MM-DD", ErrInvalidInput)
	}
	if req.TipoTurno == "" {
		return fmt.Errorf("%w: tipoTurno is required", ErrInvalidInput)
	}
	return nil
}
