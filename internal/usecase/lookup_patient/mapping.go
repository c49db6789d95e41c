package lookup_patient

import (
	"encoding/json"
	"strings"

	"github.com/mgiudice/ODC-TurnosService/internal/integrations/automation"
)

// fieldMapping define, para cada campo de la ficha, la lista ordenada de
// claves candidatas en la respuesta del webhook. Según la versión del flujo
// de automatización las claves llegan en castellano o en inglés: gana el
// primer valor no vacío.
type fieldMapping struct {
	assign func(p *Patient, value string)
	keys   []string
}

var patientFieldMappings = []fieldMapping{
	{keys: []string{"nombre", "name"}, assign: func(p *Patient, v string) { p.Nombre = v }},
	{keys: []string{"telefono", "phone"}, assign: func(p *Patient, v string) { p.Telefono = v }},
	{keys: []string{"email"}, assign: func(p *Patient, v string) { p.Email = v }},
	{keys: []string{"obraSocial", "insurance"}, assign: func(p *Patient, v string) { p.ObraSocial = v }},
	{keys: []string{"numeroAfiliado", "affiliateNumber"}, assign: func(p *Patient, v string) { p.NumeroAfiliado = v }},
	{keys: []string{"alergias", "allergies"}, assign: func(p *Patient, v string) { p.Alergias = v }},
	{keys: []string{"antecedentes", "background"}, assign: func(p *Patient, v string) { p.Antecedentes = v }},
}

// mapPatientRecord convierte el registro crudo del webhook en un Patient.
func mapPatientRecord(record automation.PatientRecord) *Patient {
	patient := &Patient{}
	for _, m := range patientFieldMappings {
		for _, key := range m.keys {
			if value := stringValue(record[key]); value != "" {
				m.assign(patient, value)
				break
			}
		}
	}
	return patient
}

// stringValue extrae un string de un valor JSON sin tipar.
// Los números (ej. numeroAfiliado) se formatean sin notación científica.
func stringValue(raw interface{}) string {
	switch v := raw.(type) {
	case string:
		return strings.TrimSpace(v)
	case json.Number:
		return v.String()
	case float64:
		n, _ := json.Marshal(v)
		return string(n)
	default:
		return ""
	}
}
