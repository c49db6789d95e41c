package handlers

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse cuerpo estándar de error de la API
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ValidationErrorResponse error de validación con detalle por campo
type ValidationErrorResponse struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields"`
}

// RespondJSON escribe payload como JSON con el status indicado.
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// RespondError escribe un error estándar.
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Code: status, Message: message})
}

// RespondBadRequest error 400
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

// RespondNotFound error 404
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

// RespondInternalError error 500 genérico
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, "error interno del servidor")
}

// RespondValidationErrors error 400 con los campos inválidos.
func RespondValidationErrors(w http.ResponseWriter, fields map[string]string) {
	RespondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
		Code:    http.StatusBadRequest,
		Message: "datos inválidos",
		Fields:  fields,
	})
}

// DecodeJSON parsea el cuerpo JSON de la request en dst.
func DecodeJSON(r *http.Request, dst interface{}) error {
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
