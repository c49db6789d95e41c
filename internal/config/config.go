package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config configuración completa del servicio
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Logs       LogsConfig       `toml:"logs"`
	Metrics    MetricsConfig    `toml:"metrics"`
	Automation AutomationConfig `toml:"automation"`
	Sessions   SessionsConfig   `toml:"sessions"`
	Insurers   InsurersConfig   `toml:"insurers"`
}

// ServerConfig configuración del servidor HTTP
type ServerConfig struct {
	HTTPPort        int    `toml:"http_port"`
	ReadTimeout     int    `toml:"read_timeout"`     // segundos
	WriteTimeout    int    `toml:"write_timeout"`    // segundos
	IdleTimeout     int    `toml:"idle_timeout"`     // segundos
	ShutdownTimeout int    `toml:"shutdown_timeout"` // segundos
	APIKey          string `toml:"api_key"`          // "" = API abierta
}

// LogsConfig configuración de logging
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig configuración de métricas prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// AutomationConfig configuración de los webhooks de automatización
type AutomationConfig struct {
	PatientLookupURL  string `toml:"patient_lookup_url"`
	AvailableSlotsURL string `toml:"available_slots_url"`
	AppointmentURL    string `toml:"appointment_url"`
	APIKey            string `toml:"api_key"`        // sobreescribible por AUTOMATION_API_KEY
	LookupTimeout     int    `toml:"lookup_timeout"` // segundos (búsqueda y horarios)
	SubmitTimeout     int    `toml:"submit_timeout"` // segundos (creación de turno)
}

// SessionsConfig configuración de las sesiones de formulario
type SessionsConfig struct {
	TTLMinutes          int `toml:"ttl_minutes"`
	CleanupIntervalMins int `toml:"cleanup_interval_minutes"`
	DebounceMillis      int `toml:"debounce_millis"` // 0 = default del dominio
}

// InsurersConfig ubicación del listado estático de obras sociales
type InsurersConfig struct {
	File string `toml:"file"`
}

// Defaults que aplican cuando el TOML no especifica el valor
const (
	defaultLookupTimeout   = 10
	defaultSubmitTimeout   = 15
	defaultSessionTTL      = 30
	defaultCleanupInterval = 5
)

// Load lee la configuración desde un archivo TOML. Antes carga un .env
// si existe (para secretos locales); AUTOMATION_API_KEY del entorno pisa
// el valor del TOML.
func Load(path string) (*Config, error) {
	// .env es opcional: en producción los secretos llegan por entorno
	_ = godotenv.Load()

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	if key := os.Getenv("AUTOMATION_API_KEY"); key != "" {
		cfg.Automation.APIKey = key
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Automation.LookupTimeout <= 0 {
		cfg.Automation.LookupTimeout = defaultLookupTimeout
	}
	if cfg.Automation.SubmitTimeout <= 0 {
		cfg.Automation.SubmitTimeout = defaultSubmitTimeout
	}
	if cfg.Sessions.TTLMinutes <= 0 {
		cfg.Sessions.TTLMinutes = defaultSessionTTL
	}
	if cfg.Sessions.CleanupIntervalMins <= 0 {
		cfg.Sessions.CleanupIntervalMins = defaultCleanupInterval
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
}

func validate(cfg *Config) error {
	if cfg.Server.HTTPPort <= 0 {
		return fmt.Errorf("config: server.http_port is required")
	}
	if cfg.Automation.PatientLookupURL == "" {
		return fmt.Errorf("config: automation.patient_lookup_url is required")
	}
	if cfg.Automation.AvailableSlotsURL == "" {
		return fmt.Errorf("config: automation.available_slots_url is required")
	}
	if cfg.Automation.AppointmentURL == "" {
		return fmt.Errorf("config: automation.appointment_url is required")
	}
	return nil
}
