package update_field

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/mgiudice/ODC-TurnosService/internal/api/handlers/sessionview"
	"github.com/mgiudice/ODC-TurnosService/internal/flow"
	"github.com/mgiudice/ODC-TurnosService/internal/service/sessions"
	"github.com/mgiudice/ODC-TurnosService/pkg/validator"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeSessions struct {
	ctrl *flow.Controller
}

func (f *fakeSessions) Get(id string) (*flow.Controller, error) {
	if f.ctrl == nil {
		return nil, sessions.ErrSessionNotFound
	}
	return f.ctrl, nil
}

func newRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/sessions/{sessionId}/fields", h.Handle).Methods(http.MethodPatch)
	return r
}

func doPatch(t *testing.T, router *mux.Router, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/sessions/abc123/fields", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandleEditsFieldAndReturnsSnapshot(t *testing.T) {
	ctrl := flow.NewController(nil, nil, nil, time.Hour, nopLogger{})
	h := NewHandler(&fakeSessions{ctrl: ctrl}, validator.NewValidator(), nopLogger{})
	router := newRouter(h)

	rec := doPatch(t, router, `{"field": "nombre", "value": "Ana Gomez"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var view sessionview.SessionView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	require.Equal(t, "Ana Gomez", view.Form.Nombre)
	require.Equal(t, "editing", view.Phase)
	require.False(t, view.CanSubmit)
	require.NotNil(t, view.AvailableSlots)
}

func TestHandleNormalizesDNI(t *testing.T) {
	ctrl := flow.NewController(nil, nil, nil, time.Hour, nopLogger{})
	h := NewHandler(&fakeSessions{ctrl: ctrl}, validator.NewValidator(), nopLogger{})
	router := newRouter(h)

	rec := doPatch(t, router, `{"field": "dni", "value": "30.111.222"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var view sessionview.SessionView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	require.Equal(t, "30111222", view.Form.DNI)
}

func TestHandleRejectsUnknownField(t *testing.T) {
	ctrl := flow.NewController(nil, nil, nil, time.Hour, nopLogger{})
	h := NewHandler(&fakeSessions{ctrl: ctrl}, validator.NewValidator(), nopLogger{})
	router := newRouter(h)

	rec := doPatch(t, router, `{"field": "apellido", "value": "x"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "Field")
}

func TestHandleRejectsMalformedBody(t *testing.T) {
	ctrl := flow.NewController(nil, nil, nil, time.Hour, nopLogger{})
	h := NewHandler(&fakeSessions{ctrl: ctrl}, validator.NewValidator(), nopLogger{})
	router := newRouter(h)

	rec := doPatch(t, router, `{"field": `)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), msgInvalidRequestBody)
}

func TestHandleSessionNotFound(t *testing.T) {
	h := NewHandler(&fakeSessions{}, validator.NewValidator(), nopLogger{})
	router := newRouter(h)

	rec := doPatch(t, router, `{"field": "nombre", "value": "Ana"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), msgSessionNotFound)
}
