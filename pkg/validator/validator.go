package validator

import (
	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	return &CustomValidator{
		validator: validator.New(),
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// FormatValidationErrors convierte los errores de validación en mensajes por campo.
func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errors[field] = "el campo " + field + " es obligatorio"
			case "email":
				errors[field] = "el campo " + field + " debe ser un email válido"
			case "min":
				errors[field] = "el campo " + field + " debe tener al menos " + e.Param() + " caracteres"
			case "max":
				errors[field] = "el campo " + field + " debe tener como máximo " + e.Param() + " caracteres"
			case "oneof":
				errors[field] = "el campo " + field + " tiene un valor no permitido"
			default:
				errors[field] = "el campo " + field + " es inválido"
			}
		}
	}

	return errors
}
