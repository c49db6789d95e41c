package create_session

import (
	"net/http"

	"github.com/mgiudice/ODC-TurnosService/internal/api/handlers"
	"github.com/mgiudice/ODC-TurnosService/internal/api/handlers/sessionview"
)

// CreateSessionResponse HTTP response model
type CreateSessionResponse struct {
	SessionID string                   `json:"sessionId"`
	State     *sessionview.SessionView `json:"state"`
}

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

// Handle POST /api/v1/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, ctrl := h.sessions.Create()

	h.logger.Info("POST /sessions - Session created: session_id=%s", id)
	handlers.RespondJSON(w, http.StatusCreated, &CreateSessionResponse{
		SessionID: id,
		State:     sessionview.FromState(ctrl.Snapshot()),
	})
}
