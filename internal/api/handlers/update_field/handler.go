package update_field

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mgiudice/ODC-TurnosService/internal/api/handlers"
	"github.com/mgiudice/ODC-TurnosService/internal/api/handlers/sessionview"
	"github.com/mgiudice/ODC-TurnosService/internal/flow"
	"github.com/mgiudice/ODC-TurnosService/internal/service/sessions"
)

const (
	msgInvalidRequestBody = "cuerpo de la petición inválido"
	msgSessionNotFound    = "la sesión no existe o expiró"
	msgSessionConfirmed   = "el turno de esta sesión ya fue confirmado"
	msgUnknownField       = "campo de formulario desconocido"
)

type Handler struct {
	sessions  SessionService
	validator Validator
	logger    Logger
}

func NewHandler(sessions SessionService, validator Validator, logger Logger) *Handler {
	return &Handler{
		sessions:  sessions,
		validator: validator,
		logger:    logger,
	}
}

// Handle PATCH /api/v1/sessions/{sessionId}/fields
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req UpdateFieldRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /sessions/{id}/fields - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		h.logger.Warn("PATCH /sessions/{id}/fields - Validation failed: %v", err)
		handlers.RespondValidationErrors(w, h.validator.FormatValidationErrors(err))
		return
	}

	ctrl, err := h.sessions.Get(sessionID)
	if err != nil {
		if errors.Is(err, sessions.ErrSessionNotFound) {
			h.logger.Warn("PATCH /sessions/{id}/fields - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)
			return
		}
		h.logger.Error("PATCH /sessions/{id}/fields - Failed to get session: session_id=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	state, err := ctrl.EditField(req.Field, req.Value)
	if err != nil {
		switch {
		case errors.Is(err, flow.ErrSessionConfirmed):
			h.logger.Warn("PATCH /sessions/{id}/fields - Session already confirmed: session_id=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgSessionConfirmed)

		case errors.Is(err, flow.ErrUnknownField):
			h.logger.Warn("PATCH /sessions/{id}/fields - Unknown field %q: session_id=%s", req.Field, sessionID)
			handlers.RespondBadRequest(w, msgUnknownField)

		default:
			h.logger.Error("PATCH /sessions/{id}/fields - Failed to edit field: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, sessionview.FromState(state))
}
