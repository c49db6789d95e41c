package domain

import "strings"

// FormField names the editable fields of the booking form.
type FormField string

const (
	FieldDNI            FormField = "dni"
	FieldNombre         FormField = "nombre"
	FieldTelefono       FormField = "telefono"
	FieldEmail          FormField = "email"
	FieldObraSocial     FormField = "obraSocial"
	FieldNumeroAfiliado FormField = "numeroAfiliado"
	FieldAlergias       FormField = "alergias"
	FieldAntecedentes   FormField = "antecedentes"
	FieldTipoTurno      FormField = "tipoTurno"
	FieldFecha          FormField = "fecha"
	FieldHora           FormField = "hora"
)

// FormFields lists every editable field.
var FormFields = []FormField{
	FieldDNI, FieldNombre, FieldTelefono, FieldEmail,
	FieldObraSocial, FieldNumeroAfiliado, FieldAlergias, FieldAntecedentes,
	FieldTipoTurno, FieldFecha, FieldHora,
}

// IsValidFormField reports whether name is an editable form field.
func IsValidFormField(name string) bool {
	for _, f := range FormFields {
		if string(f) == name {
			return true
		}
	}
	return false
}

// BookingForm is the state of one appointment form. All values are kept
// as the strings the patient typed (after normalization for dni/telefono).
type BookingForm struct {
	DNI            string
	Nombre         string
	Telefono       string
	Email          string
	ObraSocial     string
	NumeroAfiliado string
	Alergias       string
	Antecedentes   string
	TipoTurno      string
	Fecha          string
	Hora           string
}

// Set writes value into the named field.
func (f *BookingForm) Set(field FormField, value string) {
	switch field {
	case FieldDNI:
		f.DNI = value
	case FieldNombre:
		f.Nombre = value
	case FieldTelefono:
		f.Telefono = value
	case FieldEmail:
		f.Email = value
	case FieldObraSocial:
		f.ObraSocial = value
	case FieldNumeroAfiliado:
		f.NumeroAfiliado = value
	case FieldAlergias:
		f.Alergias = value
	case FieldAntecedentes:
		f.Antecedentes = value
	case FieldTipoTurno:
		f.TipoTurno = value
	case FieldFecha:
		f.Fecha = value
	case FieldHora:
		f.Hora = value
	}
}

// IsComplete reports whether every required field is non-empty.
// Email, insurance and medical notes are optional.
func (f *BookingForm) IsComplete() bool {
	return f.DNI != "" && f.Nombre != "" && f.Telefono != "" &&
		f.TipoTurno != "" && f.Fecha != "" && f.Hora != ""
}

// NormalizeDNI strips everything except digits, preserving their order.
func NormalizeDNI(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizePhone strips the separators patients commonly type into phone
// numbers (spaces, dots, dashes). Other characters pass through.
func NormalizePhone(raw string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '.', '-':
			return -1
		}
		return r
	}, raw)
}

// CountDigits returns how many decimal digits s contains.
func CountDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}
