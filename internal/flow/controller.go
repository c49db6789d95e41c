package flow

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/mgiudice/ODC-TurnosService/internal/domain"
	createAppointment "github.com/mgiudice/ODC-TurnosService/internal/usecase/create_appointment"
	getAvailableSlots "github.com/mgiudice/ODC-TurnosService/internal/usecase/get_available_slots"
	lookupPatient "github.com/mgiudice/ODC-TurnosService/internal/usecase/lookup_patient"
)

// Mensajes para el usuario
const (
	msgPatientLookupFailed = "No pudimos verificar el DNI. Revisá tu conexión e intentá de nuevo."
	msgGenericSubmitError  = "No pudimos registrar el turno. Por favor, intentá de nuevo."
)

// Controller es la máquina de estados de una sesión de formulario de turno.
//
// Encadena tres operaciones asincrónicas sobre el mismo estado:
//   - búsqueda de paciente por DNI, con debounce de tipeo
//   - consulta de horarios al completar fecha + tipo de turno
//   - confirmación del turno
//
// Los lookups llevan un número de secuencia: una respuesta vieja que llega
// después de una edición posterior se descarta, nunca pisa el efecto de la
// más nueva.
type Controller struct {
	mu    sync.Mutex
	state State

	patientUC PatientLookupUseCase
	slotsUC   SlotsUseCase
	createUC  CreateAppointmentUseCase

	debounce    time.Duration
	lookupTimer *time.Timer
	patientSeq  uint64
	slotsSeq    uint64

	log Logger
}

// NewController crea el controlador de una sesión nueva (estado vacío).
// debounce <= 0 usa el default.
func NewController(
	patientUC PatientLookupUseCase,
	slotsUC SlotsUseCase,
	createUC CreateAppointmentUseCase,
	debounce time.Duration,
	log Logger,
) *Controller {
	if debounce <= 0 {
		debounce = domain.DefaultDebounceMillis * time.Millisecond
	}
	return &Controller{
		state:     State{Phase: PhaseEditing, AvailableSlots: []string{}},
		patientUC: patientUC,
		slotsUC:   slotsUC,
		createUC:  createUC,
		debounce:  debounce,
		log:       log,
	}
}

// Snapshot devuelve una copia del estado actual.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

// EditField aplica la edición de un campo y encadena los efectos:
// normalización, debounce de la búsqueda de paciente y disparo de la
// consulta de horarios. Devuelve el estado posterior a la edición.
func (c *Controller) EditField(field string, rawValue string) (State, error) {
	if !domain.IsValidFormField(field) {
		return State{}, ErrUnknownField
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Phase == PhaseConfirmed {
		return State{}, ErrSessionConfirmed
	}

	f := domain.FormField(field)

	// Normalización de entrada
	value := rawValue
	switch f {
	case domain.FieldDNI:
		value = domain.NormalizeDNI(rawValue)
	case domain.FieldTelefono:
		value = domain.NormalizePhone(rawValue)
	}

	c.state.Form.Set(f, value)

	// Encadenamiento de efectos. Importante: se leen los valores RECIÉN
	// escritos en c.state, no los que traía el caller.
	switch f {
	case domain.FieldDNI:
		c.onDNIEditedLocked(value)
	case domain.FieldFecha, domain.FieldTipoTurno:
		c.onScheduleEditedLocked()
	}

	return c.state.clone(), nil
}

// onDNIEditedLocked re-programa (o cancela) la búsqueda de paciente.
// Se llama con c.mu tomado.
func (c *Controller) onDNIEditedLocked(dni string) {
	// Toda edición de DNI supera cualquier búsqueda pendiente o en vuelo
	c.patientSeq++
	if c.lookupTimer != nil {
		c.lookupTimer.Stop()
		c.lookupTimer = nil
	}

	if len(dni) < domain.MinDNIDigits {
		// Sin llamada remota: se invalida el resultado anterior
		c.state.PatientFound = false
		c.state.PatientSearched = false
		c.state.LookingUpPatient = false
		return
	}

	seq := c.patientSeq
	c.lookupTimer = time.AfterFunc(c.debounce, func() {
		c.runPatientLookup(seq, dni)
	})
}

// runPatientLookup ejecuta la búsqueda programada por el debounce.
func (c *Controller) runPatientLookup(seq uint64, dni string) {
	c.mu.Lock()
	if seq != c.patientSeq || c.state.Phase == PhaseConfirmed {
		c.mu.Unlock()
		return
	}
	c.state.LookingUpPatient = true
	c.mu.Unlock()

	resp, err := c.patientUC.Execute(context.Background(), &lookupPatient.Request{DNI: dni})

	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.patientSeq {
		// Llegó tarde: hubo una edición más nueva
		c.log.Info("flow: dropping stale patient lookup for dni=%s", dni)
		return
	}

	c.state.LookingUpPatient = false
	c.state.PatientSearched = true

	if err != nil {
		// La búsqueda sí muestra banner de error, a diferencia de los horarios
		c.state.PatientFound = false
		c.state.ErrorMessage = msgPatientLookupFailed
		return
	}

	c.state.ErrorMessage = ""

	if !resp.Found {
		// Se blanquea la ficha para no dejar datos de otro paciente
		c.state.PatientFound = false
		c.clearPatientFieldsLocked()
		return
	}

	c.state.PatientFound = true
	c.applyPatientLocked(resp.Patient)
}

func (c *Controller) applyPatientLocked(p *lookupPatient.Patient) {
	c.state.Form.Nombre = p.Nombre
	c.state.Form.Telefono = p.Telefono
	c.state.Form.Email = p.Email
	c.state.Form.ObraSocial = p.ObraSocial
	c.state.Form.NumeroAfiliado = p.NumeroAfiliado
	c.state.Form.Alergias = p.Alergias
	c.state.Form.Antecedentes = p.Antecedentes
}

func (c *Controller) clearPatientFieldsLocked() {
	c.applyPatientLocked(&lookupPatient.Patient{})
}

// onScheduleEditedLocked dispara la consulta de horarios cuando fecha y
// tipo de turno quedaron ambos completos. Se llama con c.mu tomado.
func (c *Controller) onScheduleEditedLocked() {
	fecha := c.state.Form.Fecha
	tipo := c.state.Form.TipoTurno
	if fecha == "" || tipo == "" {
		return
	}

	c.slotsSeq++
	seq := c.slotsSeq
	c.state.LoadingSlots = true

	go c.runSlotsLookup(seq, fecha, tipo)
}

// runSlotsLookup ejecuta la consulta de horarios.
func (c *Controller) runSlotsLookup(seq uint64, fecha, tipo string) {
	resp, err := c.slotsUC.Execute(context.Background(), &getAvailableSlots.Request{
		Fecha:     fecha,
		TipoTurno: tipo,
	})

	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.slotsSeq {
		c.log.Info("flow: dropping stale slots lookup for fecha=%s tipo=%s", fecha, tipo)
		return
	}

	c.state.LoadingSlots = false

	if err != nil {
		// Entrada inválida (tipo desconocido, fecha rota): sin horarios.
		// Nunca un banner de error.
		c.state.AvailableSlots = []string{}
	} else {
		c.state.AvailableSlots = resp.Slots
	}

	// La hora elegida se limpia si el refresco ya no la ofrece
	if c.state.Form.Hora != "" && !containsSlot(c.state.AvailableSlots, c.state.Form.Hora) {
		c.state.Form.Hora = ""
	}
}

func containsSlot(slots []string, hora string) bool {
	for _, s := range slots {
		if s == hora {
			return true
		}
	}
	return false
}

// Submit confirma el turno. Con el formulario incompleto no se llama al
// webhook. Si el webhook lo rechaza, el estado queda editable con el
// mensaje de error y todos los datos tipeados intactos.
func (c *Controller) Submit(ctx context.Context) (State, error) {
	c.mu.Lock()

	if c.state.Phase == PhaseConfirmed {
		c.mu.Unlock()
		return State{}, ErrSessionConfirmed
	}
	if c.state.Submitting {
		c.mu.Unlock()
		return State{}, ErrSubmitInFlight
	}
	if !CanSubmit(&c.state) {
		c.mu.Unlock()
		return State{}, ErrFormIncomplete
	}

	req := &createAppointment.Request{
		DNI:            c.state.Form.DNI,
		Nombre:         c.state.Form.Nombre,
		Telefono:       c.state.Form.Telefono,
		Email:          c.state.Form.Email,
		ObraSocial:     c.state.Form.ObraSocial,
		NumeroAfiliado: c.state.Form.NumeroAfiliado,
		Alergias:       c.state.Form.Alergias,
		Antecedentes:   c.state.Form.Antecedentes,
		TipoTurno:      c.state.Form.TipoTurno,
		Fecha:          c.state.Form.Fecha,
		Hora:           c.state.Form.Hora,
		PatientFound:   c.state.PatientFound,
	}
	c.state.Submitting = true
	c.mu.Unlock()

	resp, err := c.createUC.Execute(ctx, req)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Submitting = false

	if err != nil {
		var rejected *createAppointment.RejectedError
		if errors.As(err, &rejected) {
			c.state.ErrorMessage = rejected.Message
		} else {
			c.state.ErrorMessage = msgGenericSubmitError
		}
		return c.state.clone(), err
	}

	c.state.ErrorMessage = ""
	c.state.Phase = PhaseConfirmed
	c.state.Confirmation = &Confirmation{
		Fecha:           resp.Fecha,
		FechaLabel:      resp.FechaLabel,
		Hora:            resp.Hora,
		TipoTurnoNombre: resp.TipoTurnoNombre,
	}

	return c.state.clone(), nil
}

// Close cancela la búsqueda pendiente, si la hay. Se usa al expirar la sesión.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.patientSeq++
	c.slotsSeq++
	if c.lookupTimer != nil {
		c.lookupTimer.Stop()
		c.lookupTimer = nil
	}
}
