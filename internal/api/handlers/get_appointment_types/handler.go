package get_appointment_types

import (
	"net/http"

	"github.com/mgiudice/ODC-TurnosService/internal/api/handlers"
	"github.com/mgiudice/ODC-TurnosService/internal/domain"
)

// AppointmentTypeView un tipo de turno del catálogo
type AppointmentTypeView struct {
	ID              string `json:"id"`
	Nombre          string `json:"nombre"`
	DuracionMinutos int    `json:"duracionMinutos"`
}

// AppointmentTypesResponse HTTP response model
type AppointmentTypesResponse struct {
	Types []AppointmentTypeView `json:"types"`
}

// Logger interfaz para logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// Handle GET /api/v1/appointment-types
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	catalog := domain.AppointmentTypes()

	views := make([]AppointmentTypeView, len(catalog))
	for i, t := range catalog {
		views[i] = AppointmentTypeView{
			ID:              t.ID,
			Nombre:          t.Name,
			DuracionMinutos: t.DurationMinutes,
		}
	}

	handlers.RespondJSON(w, http.StatusOK, &AppointmentTypesResponse{Types: views})
}
