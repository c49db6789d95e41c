// Package sessionview define la vista HTTP del estado de una sesión de
// formulario, compartida por los handlers que devuelven snapshots.
package sessionview

import "github.com/mgiudice/ODC-TurnosService/internal/flow"

// Form campos del formulario tal como los ve el cliente
type Form struct {
	DNI            string `json:"dni"`
	Nombre         string `json:"nombre"`
	Telefono       string `json:"telefono"`
	Email          string `json:"email"`
	ObraSocial     string `json:"obraSocial"`
	NumeroAfiliado string `json:"numeroAfiliado"`
	Alergias       string `json:"alergias"`
	Antecedentes   string `json:"antecedentes"`
	TipoTurno      string `json:"tipoTurno"`
	Fecha          string `json:"fecha"`
	Hora           string `json:"hora"`
}

// Confirmation vista de la pantalla de confirmación
type Confirmation struct {
	Fecha           string `json:"fecha"`
	FechaLabel      string `json:"fechaLabel"`
	Hora            string `json:"hora"`
	TipoTurnoNombre string `json:"tipoTurnoNombre"`
}

// SessionView snapshot del estado de la sesión
type SessionView struct {
	Form             Form          `json:"form"`
	PatientFound     bool          `json:"patientFound"`
	PatientSearched  bool          `json:"patientSearched"`
	AvailableSlots   []string      `json:"availableSlots"`
	LookingUpPatient bool          `json:"lookingUpPatient"`
	LoadingSlots     bool          `json:"loadingSlots"`
	Submitting       bool          `json:"submitting"`
	ErrorMessage     string        `json:"errorMessage,omitempty"`
	Phase            string        `json:"phase"`
	CanSubmit        bool          `json:"canSubmit"`
	Confirmation     *Confirmation `json:"confirmation,omitempty"`
}

// FromState convierte el estado del controlador en la vista HTTP.
func FromState(s flow.State) *SessionView {
	view := &SessionView{
		Form: Form{
			DNI:            s.Form.DNI,
			Nombre:         s.Form.Nombre,
			Telefono:       s.Form.Telefono,
			Email:          s.Form.Email,
			ObraSocial:     s.Form.ObraSocial,
			NumeroAfiliado: s.Form.NumeroAfiliado,
			Alergias:       s.Form.Alergias,
			Antecedentes:   s.Form.Antecedentes,
			TipoTurno:      s.Form.TipoTurno,
			Fecha:          s.Form.Fecha,
			Hora:           s.Form.Hora,
		},
		PatientFound:     s.PatientFound,
		PatientSearched:  s.PatientSearched,
		AvailableSlots:   s.AvailableSlots,
		LookingUpPatient: s.LookingUpPatient,
		LoadingSlots:     s.LoadingSlots,
		Submitting:       s.Submitting,
		ErrorMessage:     s.ErrorMessage,
		Phase:            string(s.Phase),
		CanSubmit:        flow.CanSubmit(&s),
	}

	if view.AvailableSlots == nil {
		view.AvailableSlots = []string{}
	}

	if s.Confirmation != nil {
		view.Confirmation = &Confirmation{
			Fecha:           s.Confirmation.Fecha,
			FechaLabel:      s.Confirmation.FechaLabel,
			Hora:            s.Confirmation.Hora,
			TipoTurnoNombre: s.Confirmation.TipoTurnoNombre,
		}
	}

	return view
}
