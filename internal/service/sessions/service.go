package sessions

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mgiudice/ODC-TurnosService/internal/flow"
)

// Service administra las sesiones de formulario en memoria.
//
// Una sesión equivale a una pestaña del formulario: nace vacía, vive
// mientras el paciente la edita y muere al expirar el TTL o al cerrar
// el servicio. No hay persistencia: recargar la página es empezar de cero,
// igual que en el formulario original.
type Service struct {
	mu       sync.Mutex
	sessions map[string]*session

	factory ControllerFactory
	ttl     time.Duration
	gauge   SessionsGauge
	logger  Logger

	stopJanitor chan struct{}
	janitorDone chan struct{}
}

type session struct {
	controller *flow.Controller
	lastAccess time.Time
}

// NewService crea el administrador de sesiones. gauge puede ser nil.
func NewService(factory ControllerFactory, ttl time.Duration, gauge SessionsGauge, logger Logger) *Service {
	return &Service{
		sessions:    make(map[string]*session),
		factory:     factory,
		ttl:         ttl,
		gauge:       gauge,
		logger:      logger,
		stopJanitor: make(chan struct{}),
		janitorDone: make(chan struct{}),
	}
}

// Create abre una sesión nueva y devuelve su id.
func (s *Service) Create() (string, *flow.Controller) {
	id := uuid.NewString()
	ctrl := s.factory()

	s.mu.Lock()
	s.sessions[id] = &session{controller: ctrl, lastAccess: time.Now()}
	s.mu.Unlock()

	if s.gauge != nil {
		s.gauge.Inc()
	}
	s.logger.Info("sessions: created session id=%s", id)
	return id, ctrl
}

// Get devuelve el controlador de una sesión viva y renueva su TTL.
func (s *Service) Get(id string) (*flow.Controller, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	sess.lastAccess = time.Now()
	return sess.controller, nil
}

// StartJanitor lanza la limpieza periódica de sesiones expiradas.
func (s *Service) StartJanitor(interval time.Duration) {
	go func() {
		defer close(s.janitorDone)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.evictExpired()
			case <-s.stopJanitor:
				return
			}
		}
	}()
}

// StopJanitor detiene la limpieza periódica y espera a que termine.
func (s *Service) StopJanitor() {
	close(s.stopJanitor)
	<-s.janitorDone
}

func (s *Service) evictExpired() {
	cutoff := time.Now().Add(-s.ttl)

	s.mu.Lock()
	var expired []string
	for id, sess := range s.sessions {
		if sess.lastAccess.Before(cutoff) {
			expired = append(expired, id)
		}
	}
	var controllers []*flow.Controller
	for _, id := range expired {
		controllers = append(controllers, s.sessions[id].controller)
		delete(s.sessions, id)
	}
	s.mu.Unlock()

	for _, ctrl := range controllers {
		ctrl.Close()
		if s.gauge != nil {
			s.gauge.Dec()
		}
	}
	if len(expired) > 0 {
		s.logger.Info("sessions: evicted %d expired sessions", len(expired))
	}
}

// Len devuelve la cantidad de sesiones vivas.
func (s *Service) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
