package submit_appointment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/mgiudice/ODC-TurnosService/internal/api/handlers/sessionview"
	"github.com/mgiudice/ODC-TurnosService/internal/flow"
	"github.com/mgiudice/ODC-TurnosService/internal/service/sessions"
	createAppointment "github.com/mgiudice/ODC-TurnosService/internal/usecase/create_appointment"
	getAvailableSlots "github.com/mgiudice/ODC-TurnosService/internal/usecase/get_available_slots"
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

type fakeSlotsUC struct{}

func (fakeSlotsUC) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	return &getAvailableSlots.Response{
		Fecha:     req.Fecha,
		TipoTurno: req.TipoTurno,
		Slots:     []string{"15:30"},
	}, nil
}

type fakeCreateUC struct {
	resp *createAppointment.Response
	err  error
}

func (f *fakeCreateUC) Execute(context.Context, *createAppointment.Request) (*createAppointment.Response, error) {
	return f.resp, f.err
}

func newRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/sessions/{sessionId}/submit", h.Handle).Methods(http.MethodPost)
	return r
}

func doSubmit(t *testing.T, router *mux.Router) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/abc123/submit", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// readyController arma un controlador con el formulario completo.
func readyController(t *testing.T, createUC flow.CreateAppointmentUseCase) *flow.Controller {
	t.Helper()
	ctrl := flow.NewController(nil, fakeSlotsUC{}, createUC, time.Hour, nopLogger{})

	for _, edit := range [][2]string{
		{"dni", "30111222"},
		{"nombre", "Ana Gomez"},
		{"telefono", "3811234567"},
		{"tipoTurno", "limpieza"},
		{"fecha", "2025-03-04"},
	} {
		_, err := ctrl.EditField(edit[0], edit[1])
		require.NoError(t, err)
	}

	require.Eventually(t, func() bool {
		return !ctrl.Snapshot().LoadingSlots
	}, 2*time.Second, 5*time.Millisecond)

	_, err := ctrl.EditField("hora", "15:30")
	require.NoError(t, err)
	return ctrl
}

func TestHandleConfirmsAppointment(t *testing.T) {
	createUC := &fakeCreateUC{resp: &createAppointment.Response{
		Fecha:           "2025-03-04",
		FechaLabel:      "martes, 4 de marzo de 2025",
		Hora:            "15:30",
		TipoTurno:       "limpieza",
		TipoTurnoNombre: "Limpieza",
		FechaHora:       "2025-03-04T15:30:00-03:00",
	}}
	ctrl := readyController(t, createUC)
	h := NewHandler(&fakeSessions{ctrl: ctrl}, nopLogger{})
	router := newRouter(h)

	rec := doSubmit(t, router)
	require.Equal(t, http.StatusOK, rec.Code)

	var view sessionview.SessionView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	require.Equal(t, "confirmed", view.Phase)
	require.NotNil(t, view.Confirmation)
	require.Equal(t, "martes, 4 de marzo de 2025", view.Confirmation.FechaLabel)
	require.Equal(t, "Limpieza", view.Confirmation.TipoTurnoNombre)

	// Una segunda confirmación sobre la misma sesión es conflicto
	rec = doSubmit(t, router)
	require.Equal(t, http.StatusConflict, rec.Code)
	require.Contains(t, rec.Body.String(), msgSessionConfirmed)
}

func TestHandleIncompleteForm(t *testing.T) {
	ctrl := flow.NewController(nil, fakeSlotsUC{}, &fakeCreateUC{}, time.Hour, nopLogger{})
	h := NewHandler(&fakeSessions{ctrl: ctrl}, nopLogger{})
	router := newRouter(h)

	rec := doSubmit(t, router)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), msgFormIncomplete)
}

func TestHandleRejectedAppointment(t *testing.T) {
	createUC := &fakeCreateUC{err: &createAppointment.RejectedError{Message: "Ese horario ya fue tomado"}}
	ctrl := readyController(t, createUC)
	h := NewHandler(&fakeSessions{ctrl: ctrl}, nopLogger{})
	router := newRouter(h)

	rec := doSubmit(t, router)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.Contains(t, rec.Body.String(), "Ese horario ya fue tomado")

	// La sesión sigue editable con los datos intactos
	st := ctrl.Snapshot()
	require.Equal(t, flow.PhaseEditing, st.Phase)
	require.Equal(t, "30111222", st.Form.DNI)
}

func TestHandleSessionNotFound(t *testing.T) {
	h := NewHandler(&fakeSessions{}, nopLogger{})
	router := newRouter(h)

	rec := doSubmit(t, router)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), msgSessionNotFound)
}
