package submit_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mgiudice/ODC-TurnosService/internal/api/handlers"
	"github.com/mgiudice/ODC-TurnosService/internal/api/handlers/sessionview"
	"github.com/mgiudice/ODC-TurnosService/internal/flow"
	"github.com/mgiudice/ODC-TurnosService/internal/service/sessions"
	createAppointment "github.com/mgiudice/ODC-TurnosService/internal/usecase/create_appointment"
)

const (
	msgSessionNotFound  = "la sesión no existe o expiró"
	msgSessionConfirmed = "el turno de esta sesión ya fue confirmado"
	msgFormIncomplete   = "faltan completar campos obligatorios"
	msgSubmitInFlight   = "ya hay una confirmación en curso"
)

type Handler struct {
	sessions SessionService
	logger   Logger
}

func NewHandler(sessions SessionService, logger Logger) *Handler {
	return &Handler{
		sessions: sessions,
		logger:   logger,
	}
}

// Handle POST /api/v1/sessions/{sessionId}/submit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	ctrl, err := h.sessions.Get(sessionID)
	if err != nil {
		if errors.Is(err, sessions.ErrSessionNotFound) {
			h.logger.Warn("POST /sessions/{id}/submit - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)
			return
		}
		h.logger.Error("POST /sessions/{id}/submit - Failed to get session: session_id=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	state, err := ctrl.Submit(r.Context())
	if err != nil {
		var rejected *createAppointment.RejectedError

		switch {
		case errors.Is(err, flow.ErrSessionConfirmed):
			h.logger.Warn("POST /sessions/{id}/submit - Session already confirmed: session_id=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgSessionConfirmed)

		case errors.Is(err, flow.ErrFormIncomplete):
			h.logger.Warn("POST /sessions/{id}/submit - Form incomplete: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgFormIncomplete)

		case errors.Is(err, flow.ErrSubmitInFlight):
			h.logger.Warn("POST /sessions/{id}/submit - Submit already in flight: session_id=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgSubmitInFlight)

		case errors.As(err, &rejected):
			// El mensaje ya es apto para el usuario; los datos tipeados
			// quedaron intactos para reintentar
			h.logger.Warn("POST /sessions/{id}/submit - Rejected: session_id=%s, message=%q", sessionID, rejected.Message)
			handlers.RespondError(w, http.StatusUnprocessableEntity, rejected.Message)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /sessions/{id}/submit - Invalid form data: session_id=%s, error=%v", sessionID, err)
			handlers.RespondBadRequest(w, msgFormIncomplete)

		default:
			h.logger.Error("POST /sessions/{id}/submit - Failed to submit: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/submit - Appointment confirmed: session_id=%s", sessionID)
	handlers.RespondJSON(w, http.StatusOK, sessionview.FromState(state))
}
