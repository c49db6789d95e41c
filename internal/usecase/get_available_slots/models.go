package get_available_slots

// Request modelo de entrada de la consulta de horarios
type Request struct {
	Fecha     string // YYYY-MM-DD
	TipoTurno string // id del catálogo de tipos de turno
}

// Response modelo de salida con los horarios disponibles
type Response struct {
	Fecha           string
	TipoTurno       string
	DurationMinutes int
	Slots           []string // "HH:MM", en el orden que devolvió el webhook
	Degraded        bool     // true si el webhook falló y se degradó a lista vacía
}
