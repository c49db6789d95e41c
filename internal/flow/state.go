package flow

import "github.com/mgiudice/ODC-TurnosService/internal/domain"

// Phase fase del ciclo de vida de la sesión
type Phase string

const (
	// PhaseEditing el formulario acepta ediciones y confirmación
	PhaseEditing Phase = "editing"
	// PhaseConfirmed el turno quedó registrado; la sesión es terminal
	PhaseConfirmed Phase = "confirmed"
)

// Confirmation datos de la pantalla de confirmación
type Confirmation struct {
	Fecha           string
	FechaLabel      string
	Hora            string
	TipoTurnoNombre string
}

// State es la foto inmutable del estado de una sesión de formulario.
// Snapshot devuelve siempre una copia: los callers nunca ven mutaciones
// posteriores del controlador.
type State struct {
	Form domain.BookingForm

	// Resultado de la última búsqueda de paciente resuelta
	PatientFound    bool
	PatientSearched bool

	// Horarios de la última consulta de disponibilidad resuelta
	AvailableSlots []string

	// Flags de operaciones asincrónicas en curso
	LookingUpPatient bool
	LoadingSlots     bool
	Submitting       bool

	// Último mensaje de error para el usuario ("" = sin error)
	ErrorMessage string

	Phase        Phase
	Confirmation *Confirmation
}

// clone copia el estado, incluyendo la lista de horarios.
func (s *State) clone() State {
	out := *s
	if s.AvailableSlots != nil {
		out.AvailableSlots = make([]string, len(s.AvailableSlots))
		copy(out.AvailableSlots, s.AvailableSlots)
	}
	if s.Confirmation != nil {
		conf := *s.Confirmation
		out.Confirmation = &conf
	}
	return out
}

// CanSubmit evalúa el predicado de validez: todos los campos requeridos
// no vacíos y los mínimos de dígitos de dni y teléfono.
func CanSubmit(s *State) bool {
	if !s.Form.IsComplete() {
		return false
	}
	if domain.CountDigits(s.Form.DNI) < domain.MinDNIDigits {
		return false
	}
	if domain.CountDigits(s.Form.Telefono) < domain.MinPhoneDigits {
		return false
	}
	return true
}
