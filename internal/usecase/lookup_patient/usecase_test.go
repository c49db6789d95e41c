package lookup_patient

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mgiudice/ODC-TurnosService/internal/integrations/automation"
)

type fakeClient struct {
	calls []string
	resp  *automation.PatientLookupResponse
	err   error
}

func (f *fakeClient) LookupPatient(_ context.Context, dni string) (*automation.PatientLookupResponse, error) {
	f.calls = append(f.calls, dni)
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestExecuteShortDNIDoesNotCallWebhook(t *testing.T) {
	client := &fakeClient{}
	uc := NewUseCase(client, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{DNI: "3011122"})
	require.ErrorIs(t, err, ErrInvalidInput)
	require.Empty(t, client.calls)
}

func TestExecuteFoundMapsLocalizedKeys(t *testing.T) {
	client := &fakeClient{resp: &automation.PatientLookupResponse{
		Found: true,
		Patient: automation.PatientRecord{
			"nombre":         "Ana Gomez",
			"telefono":       "3811234567",
			"obraSocial":     "OSDE",
			"numeroAfiliado": "998877",
			"alergias":       "Penicilina",
		},
	}}
	uc := NewUseCase(client, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{DNI: "30111222"})
	require.NoError(t, err)
	require.True(t, resp.Found)
	require.Equal(t, "Ana Gomez", resp.Patient.Nombre)
	require.Equal(t, "3811234567", resp.Patient.Telefono)
	require.Equal(t, "OSDE", resp.Patient.ObraSocial)
	require.Equal(t, "998877", resp.Patient.NumeroAfiliado)
	require.Equal(t, "Penicilina", resp.Patient.Alergias)
	// Los campos ausentes quedan vacíos: el default se aplica al confirmar
	require.Empty(t, resp.Patient.Antecedentes)
	require.Empty(t, resp.Patient.Email)
}

func TestExecuteFoundMapsEnglishKeys(t *testing.T) {
	client := &fakeClient{resp: &automation.PatientLookupResponse{
		Found: true,
		Patient: automation.PatientRecord{
			"name":            "Juan Perez",
			"phone":           "3819876543",
			"insurance":       "Swiss Medical",
			"affiliateNumber": float64(123456),
			"allergies":       "Ibuprofeno",
			"background":      "Diabetes tipo 2",
		},
	}}
	uc := NewUseCase(client, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{DNI: "28555666"})
	require.NoError(t, err)
	require.Equal(t, "Juan Perez", resp.Patient.Nombre)
	require.Equal(t, "3819876543", resp.Patient.Telefono)
	require.Equal(t, "Swiss Medical", resp.Patient.ObraSocial)
	require.Equal(t, "123456", resp.Patient.NumeroAfiliado)
	require.Equal(t, "Ibuprofeno", resp.Patient.Alergias)
	require.Equal(t, "Diabetes tipo 2", resp.Patient.Antecedentes)
}

func TestExecuteFirstNonEmptyKeyWins(t *testing.T) {
	client := &fakeClient{resp: &automation.PatientLookupResponse{
		Found: true,
		Patient: automation.PatientRecord{
			"nombre": "",
			"name":   "Ana Gomez",
			"phone":  "111",
			// la grafía localizada tiene prioridad cuando no está vacía
			"telefono": "3811234567",
		},
	}}
	uc := NewUseCase(client, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{DNI: "30111222"})
	require.NoError(t, err)
	require.Equal(t, "Ana Gomez", resp.Patient.Nombre)
	require.Equal(t, "3811234567", resp.Patient.Telefono)
}

func TestExecuteNotFound(t *testing.T) {
	client := &fakeClient{resp: &automation.PatientLookupResponse{Found: false}}
	uc := NewUseCase(client, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{DNI: "30111222"})
	require.NoError(t, err)
	require.False(t, resp.Found)
	require.Nil(t, resp.Patient)
}

func TestExecuteWebhookFailure(t *testing.T) {
	client := &fakeClient{err: errors.New("connection refused")}
	uc := NewUseCase(client, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{DNI: "30111222"})
	require.ErrorIs(t, err, ErrLookupFailed)
}
