package create_appointment

import (
	"fmt"
	"time"
	// La zona del consultorio tiene que resolverse aunque el host no
	// tenga tzdata instalada (contenedores mínimos).
	_ "time/tzdata"

	"github.com/mgiudice/ODC-TurnosService/internal/domain"
)

var businessLocation = mustLoadBusinessLocation()

func mustLoadBusinessLocation() *time.Location {
	loc, err := time.LoadLocation(domain.BusinessTimeZone)
	if err != nil {
		panic(fmt.Sprintf("cannot load business timezone %s: %v", domain.BusinessTimeZone, err))
	}
	return loc
}

// combineDateTime combina fecha (YYYY-MM-DD) y hora (HH:MM) en un
// timestamp RFC 3339 interpretado en la zona del consultorio, con su
// offset explícito. 15:30 siempre son las 15:30 de Buenos Aires, sin
// importar la zona del cliente; el campo timezone del payload sigue
// siendo la referencia para el backend.
func combineDateTime(fecha, hora string) (string, error) {
	t, err := time.ParseInLocation(
		domain.DateFormat+" "+domain.TimeFormat,
		fecha+" "+hora,
		businessLocation,
	)
	if err != nil {
		return "", fmt.Errorf("%w: cannot combine fecha=%q hora=%q: %v", ErrInvalidInput, fecha, hora, err)
	}
	return t.Format(time.RFC3339), nil
}
