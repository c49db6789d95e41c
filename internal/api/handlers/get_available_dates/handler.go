package get_available_dates

import (
	"net/http"
	"time"

	"github.com/mgiudice/ODC-TurnosService/internal/api/handlers"
	"github.com/mgiudice/ODC-TurnosService/internal/domain"
)

// AvailableDateView una fecha candidata del calendario
type AvailableDateView struct {
	Value string `json:"value"` // YYYY-MM-DD
	Label string `json:"label"` // es-AR
}

// AvailableDatesResponse HTTP response model
type AvailableDatesResponse struct {
	Dates []AvailableDateView `json:"dates"`
}

// Logger interfaz para logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// TimeProvider interfaz para obtener la hora actual (para testing)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider provider de hora real para producción
type RealTimeProvider struct{}

// Now devuelve la hora actual en la zona del consultorio.
func (p *RealTimeProvider) Now() time.Time {
	loc, err := time.LoadLocation(domain.BusinessTimeZone)
	if err != nil {
		return time.Now()
	}
	return time.Now().In(loc)
}

type Handler struct {
	timeProvider TimeProvider
	logger       Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Handle GET /api/v1/available-dates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dates := domain.AvailableDates(h.timeProvider.Now())

	views := make([]AvailableDateView, len(dates))
	for i, d := range dates {
		views[i] = AvailableDateView{Value: d.Value, Label: d.Label}
	}

	handlers.RespondJSON(w, http.StatusOK, &AvailableDatesResponse{Dates: views})
}
