package get_session

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mgiudice/ODC-TurnosService/internal/api/handlers"
	"github.com/mgiudice/ODC-TurnosService/internal/api/handlers/sessionview"
	"github.com/mgiudice/ODC-TurnosService/internal/service/sessions"
)

const msgSessionNotFound = "la sesión no existe o expiró"

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

// Handle GET /api/v1/sessions/{sessionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	ctrl, err := h.sessions.Get(sessionID)
	if err != nil {
		if errors.Is(err, sessions.ErrSessionNotFound) {
			h.logger.Warn("GET /sessions/{id} - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)
			return
		}
		h.logger.Error("GET /sessions/{id} - Failed to get session: session_id=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, sessionview.FromState(ctrl.Snapshot()))
}
