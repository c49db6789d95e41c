package domain

// AppointmentType is one of the fixed kinds of dental appointments the
// clinic offers. The duration drives the availability lookup.
type AppointmentType struct {
	ID              string
	Name            string
	DurationMinutes int
}

// appointmentTypes is the fixed catalog, in the order the form shows it.
var appointmentTypes = []AppointmentType{
	{ID: "consulta", Name: "Consulta", DurationMinutes: 30},
	{ID: "limpieza", Name: "Limpieza", DurationMinutes: 45},
	{ID: "ensenanza", Name: "Enseñanza de higiene", DurationMinutes: 30},
	{ID: "caries_chicos", Name: "Arreglo de caries (chicos)", DurationMinutes: 45},
	{ID: "caries_grandes", Name: "Arreglo de caries (grandes)", DurationMinutes: 60},
	{ID: "molde_blanqueamiento", Name: "Molde para blanqueamiento", DurationMinutes: 30},
	{ID: "molde_relajacion", Name: "Molde para placa de relajación", DurationMinutes: 30},
	{ID: "instalacion_placas", Name: "Instalación de placas", DurationMinutes: 45},
	{ID: "carillas", Name: "Carillas", DurationMinutes: 90},
	{ID: "contenciones", Name: "Contenciones", DurationMinutes: 45},
	{ID: "incrustaciones", Name: "Incrustaciones", DurationMinutes: 75},
}

// AppointmentTypes returns the catalog in display order.
func AppointmentTypes() []AppointmentType {
	out := make([]AppointmentType, len(appointmentTypes))
	copy(out, appointmentTypes)
	return out
}

// AppointmentTypeByID resolves a catalog entry by its id.
func AppointmentTypeByID(id string) (AppointmentType, bool) {
	for _, t := range appointmentTypes {
		if t.ID == id {
			return t, true
		}
	}
	return AppointmentType{}, false
}
