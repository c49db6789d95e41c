package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const minimalConfig = `
[server]
http_port = 8080

[automation]
patient_lookup_url = "https://automation.example.com/lookup"
available_slots_url = "https://automation.example.com/slots"
appointment_url = "https://automation.example.com/appointment"
`

func TestLoadMinimalConfigAppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	require.Equal(t, 8080, cfg.Server.HTTPPort)
	require.Equal(t, defaultLookupTimeout, cfg.Automation.LookupTimeout)
	require.Equal(t, defaultSubmitTimeout, cfg.Automation.SubmitTimeout)
	require.Equal(t, defaultSessionTTL, cfg.Sessions.TTLMinutes)
	require.Equal(t, defaultCleanupInterval, cfg.Sessions.CleanupIntervalMins)
	require.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestLoadFullConfig(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
[server]
http_port = 9090
read_timeout = 10
write_timeout = 20
api_key = "service-key"

[logs]
file = "logs/app.log"
level = "debug"

[metrics]
enabled = true
service_name = "turnos"

[automation]
patient_lookup_url = "https://automation.example.com/lookup"
available_slots_url = "https://automation.example.com/slots"
appointment_url = "https://automation.example.com/appointment"
api_key = "toml-key"
lookup_timeout = 7
submit_timeout = 25

[sessions]
ttl_minutes = 45
cleanup_interval_minutes = 10
debounce_millis = 250

[insurers]
file = "data/obras_sociales.json"
`))
	require.NoError(t, err)

	require.Equal(t, 9090, cfg.Server.HTTPPort)
	require.Equal(t, "service-key", cfg.Server.APIKey)
	require.Equal(t, "debug", cfg.Logs.Level)
	require.True(t, cfg.Metrics.Enabled)
	require.Equal(t, "toml-key", cfg.Automation.APIKey)
	require.Equal(t, 7, cfg.Automation.LookupTimeout)
	require.Equal(t, 25, cfg.Automation.SubmitTimeout)
	require.Equal(t, 45, cfg.Sessions.TTLMinutes)
	require.Equal(t, 250, cfg.Sessions.DebounceMillis)
	require.Equal(t, "data/obras_sociales.json", cfg.Insurers.File)
}

func TestEnvOverridesAutomationAPIKey(t *testing.T) {
	t.Setenv("AUTOMATION_API_KEY", "env-key")

	cfg, err := Load(writeConfig(t, minimalConfig+`
api_key = "toml-key"
`))
	require.NoError(t, err)
	require.Equal(t, "env-key", cfg.Automation.APIKey)
}

func TestLoadRejectsMissingRequiredFields(t *testing.T) {
	cases := map[string]string{
		"missing port": `
[automation]
patient_lookup_url = "https://a/l"
available_slots_url = "https://a/s"
appointment_url = "https://a/a"
`,
		"missing lookup url": `
[server]
http_port = 8080

[automation]
available_slots_url = "https://a/s"
appointment_url = "https://a/a"
`,
		"missing appointment url": `
[server]
http_port = 8080

[automation]
patient_lookup_url = "https://a/l"
available_slots_url = "https://a/s"
`,
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, content))
			require.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}
