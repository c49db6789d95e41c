package middleware

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
)

// APIKeyAuth exige el header X-Api-Key cuando el servicio se configura
// con una clave. Con clave vacía la API queda abierta (el formulario
// es público en la mayoría de los despliegues).
func APIKeyAuth(apiKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if apiKey == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get("X-Api-Key")
			if subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]interface{}{
					"code":    http.StatusUnauthorized,
					"message": "no autorizado",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
