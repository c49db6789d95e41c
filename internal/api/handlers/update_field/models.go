package update_field

// UpdateFieldRequest HTTP request model.
// Value admite vacío: borrar un campo es una edición válida.
type UpdateFieldRequest struct {
	Field string `json:"field" validate:"required,oneof=dni nombre telefono email obraSocial numeroAfiliado alergias antecedentes tipoTurno fecha hora"`
	Value string `json:"value" validate:"max=500"`
}
