package create_appointment

// Request modelo de entrada de la creación de turno: el estado completo
// del formulario al momento de confirmar, más el resultado de la última
// búsqueda de paciente.
type Request struct {
	DNI            string
	Nombre         string
	Telefono       string
	Email          string
	ObraSocial     string
	NumeroAfiliado string
	Alergias       string
	Antecedentes   string
	TipoTurno      string // id del catálogo
	Fecha          string // YYYY-MM-DD
	Hora           string // HH:MM
	PatientFound   bool   // la última búsqueda exitosa encontró la ficha
}

// Response datos de la pantalla de confirmación
type Response struct {
	Fecha           string
	FechaLabel      string // es-AR, para mostrar al paciente
	Hora            string
	TipoTurno       string
	TipoTurnoNombre string
	FechaHora       string // RFC 3339 con offset del consultorio
}
