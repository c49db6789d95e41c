package insurers

import (
	"encoding/json"
	"fmt"
	"os"
)

// Provider una obra social del listado estático
type Provider struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
}

// Service sirve el listado estático de obras sociales.
// El listado se carga una sola vez al iniciar; cambiarlo requiere
// reiniciar el servicio, igual que el JSON estático del formulario original.
type Service struct {
	providers []Provider
}

// Load lee el listado desde un archivo JSON.
func Load(path string) (*Service, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read insurers file %s: %w", path, err)
	}

	var providers []Provider
	if err := json.Unmarshal(data, &providers); err != nil {
		return nil, fmt.Errorf("failed to parse insurers file %s: %w", path, err)
	}

	return &Service{providers: providers}, nil
}

// List devuelve el listado en el orden del archivo.
func (s *Service) List() []Provider {
	out := make([]Provider, len(s.providers))
	copy(out, s.providers)
	return out
}
