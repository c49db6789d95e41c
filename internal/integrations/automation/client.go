package automation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/mgiudice/ODC-TurnosService/pkg/webhookmetrics"
)

// Logger interfaz de logging que usa el cliente
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Endpoints URLs de los tres webhooks de la plataforma de automatización
type Endpoints struct {
	PatientLookupURL  string
	AvailableSlotsURL string
	AppointmentURL    string
}

// Client cliente HTTP para los webhooks de automatización.
// Los lookups y la creación de turnos usan timeouts distintos
// (la creación dispara un flujo más largo del lado del backend).
type Client struct {
	endpoints    Endpoints
	apiKey       string
	lookupClient *http.Client
	createClient *http.Client
	log          Logger
}

// NewClient crea un nuevo cliente. transport puede ser nil (se usa el default);
// pasar un webhookmetrics.Transport habilita métricas de llamadas salientes.
func NewClient(
	endpoints Endpoints,
	apiKey string,
	lookupTimeout time.Duration,
	createTimeout time.Duration,
	transport http.RoundTripper,
	log Logger,
) *Client {
	return &Client{
		endpoints: endpoints,
		apiKey:    apiKey,
		lookupClient: &http.Client{
			Timeout:   lookupTimeout,
			Transport: transport,
		},
		createClient: &http.Client{
			Timeout:   createTimeout,
			Transport: transport,
		},
		log: log,
	}
}

// LookupPatient busca una ficha de paciente por DNI.
func (c *Client) LookupPatient(ctx context.Context, dni string) (*PatientLookupResponse, error) {
	reqURL := fmt.Sprintf("%s?%s", c.endpoints.PatientLookupURL, url.Values{"dni": {dni}}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	c.setHeaders(req)
	req = webhookmetrics.Target(req, "patient_lookup")

	resp, err := c.lookupClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var result PatientLookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &result, nil
}

// GetAvailableSlots consulta los horarios disponibles para una fecha
// y una duración de turno en minutos.
func (c *Client) GetAvailableSlots(ctx context.Context, fecha string, durationMinutes int) ([]string, error) {
	query := url.Values{
		"fecha":    {fecha},
		"duration": {strconv.Itoa(durationMinutes)},
	}
	reqURL := fmt.Sprintf("%s?%s", c.endpoints.AvailableSlotsURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	c.setHeaders(req)
	req = webhookmetrics.Target(req, "available_slots")

	resp, err := c.lookupClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var result AvailableSlotsResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	// El campo puede faltar en la respuesta: se trata como lista vacía
	if result.AvailableSlots == nil {
		return []string{}, nil
	}
	return result.AvailableSlots, nil
}

// CreateAppointment envía el turno al webhook de creación.
// Un status no exitoso se devuelve como *APIError con el mensaje del
// cuerpo de error, si se pudo parsear.
func (c *Client) CreateAppointment(ctx context.Context, appointment *AppointmentRequest) error {
	payload, err := json.Marshal(appointment)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoints.AppointmentURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	c.setHeaders(req)
	req = webhookmetrics.Target(req, "create_appointment")

	resp, err := c.createClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		// El cuerpo de éxito no se usa
		return nil
	}

	apiErr := &APIError{StatusCode: resp.StatusCode}
	var errBody ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&errBody); err == nil {
		apiErr.Message = errBody.Message
	}

	c.log.Warn("CreateAppointment: webhook rejected appointment: status=%d, message=%q", apiErr.StatusCode, apiErr.Message)
	return apiErr
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}
}
