package get_insurers

import (
	"net/http"

	"github.com/mgiudice/ODC-TurnosService/internal/api/handlers"
	"github.com/mgiudice/ODC-TurnosService/internal/service/insurers"
)

// InsurersService interfaz del servicio de obras sociales
type InsurersService interface {
	List() []insurers.Provider
}

// Logger interfaz para logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// InsurerView una obra social del listado
type InsurerView struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
}

// InsurersResponse HTTP response model
type InsurersResponse struct {
	Insurers []InsurerView `json:"insurers"`
}

type Handler struct {
	service InsurersService
	logger  Logger
}

func NewHandler(service InsurersService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/insurers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	providers := h.service.List()

	views := make([]InsurerView, len(providers))
	for i, p := range providers {
		views[i] = InsurerView{ID: p.ID, Nombre: p.Nombre}
	}

	handlers.RespondJSON(w, http.StatusOK, &InsurersResponse{Insurers: views})
}
