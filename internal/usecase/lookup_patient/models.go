package lookup_patient

// Request modelo de entrada de la búsqueda de paciente
type Request struct {
	DNI string // sólo dígitos, mínimo domain.MinDNIDigits
}

// Patient ficha de paciente ya normalizada a una sola grafía de campos.
// Los campos ausentes en la respuesta quedan vacíos: los defaults de
// notas médicas se aplican recién al confirmar el turno, no acá.
type Patient struct {
	Nombre         string
	Telefono       string
	Email          string
	ObraSocial     string
	NumeroAfiliado string
	Alergias       string
	Antecedentes   string
}

// Response modelo de salida de la búsqueda de paciente
type Response struct {
	Found   bool
	Patient *Patient // nil cuando Found es false
}
