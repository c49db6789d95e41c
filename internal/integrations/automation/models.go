package automation

// PatientRecord es el registro crudo que devuelve el webhook de búsqueda.
// Las claves llegan en dos variantes de nombre (castellano o inglés) según
// la versión del flujo de automatización, por eso se mantiene sin tipar.
type PatientRecord map[string]interface{}

// PatientLookupResponse respuesta del webhook de búsqueda de pacientes
type PatientLookupResponse struct {
	Found   bool          `json:"found"`
	Patient PatientRecord `json:"patient,omitempty"`
}

// AvailableSlotsResponse respuesta del webhook de disponibilidad
type AvailableSlotsResponse struct {
	AvailableSlots []string `json:"availableSlots"`
}

// AppointmentRequest cuerpo del POST al webhook de creación de turnos
type AppointmentRequest struct {
	DNI             string `json:"dni"`
	Nombre          string `json:"nombre"`
	Telefono        string `json:"telefono"`
	Email           string `json:"email,omitempty"`
	ObraSocial      string `json:"obraSocial,omitempty"`
	NumeroAfiliado  string `json:"numeroAfiliado,omitempty"`
	Alergias        string `json:"alergias"`
	Antecedentes    string `json:"antecedentes"`
	TipoTurno       string `json:"tipoTurno"`
	TipoTurnoNombre string `json:"tipoTurnoNombre"`
	DuracionMinutos int    `json:"duracionMinutos"`
	FechaHora       string `json:"fechaHora"` // RFC 3339 con offset del consultorio
	Timezone        string `json:"timezone"`
	IsNewPatient    bool   `json:"isNewPatient"`
}

// ErrorResponse cuerpo de error que puede devolver el webhook de creación
type ErrorResponse struct {
	Message string `json:"message"`
}
