package insurers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadAndList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "obras_sociales.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"id": "osde", "nombre": "OSDE"},
		{"id": "swiss_medical", "nombre": "Swiss Medical"},
		{"id": "particular", "nombre": "Particular (sin obra social)"}
	]`), 0o644))

	svc, err := Load(path)
	require.NoError(t, err)

	list := svc.List()
	require.Len(t, list, 3)
	// El orden del archivo se respeta
	require.Equal(t, Provider{ID: "osde", Nombre: "OSDE"}, list[0])
	require.Equal(t, "particular", list[2].ID)
}

func TestListReturnsACopy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "obras_sociales.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id": "osde", "nombre": "OSDE"}]`), 0o644))

	svc, err := Load(path)
	require.NoError(t, err)

	list := svc.List()
	list[0].Nombre = "mutated"
	require.Equal(t, "OSDE", svc.List()[0].Nombre)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "obras_sociales.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}
