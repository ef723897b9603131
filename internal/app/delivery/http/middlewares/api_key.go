package middlewares

import (
	"famhealth-service/internal/pkg/constvars"
	"famhealth-service/internal/pkg/exceptions"
	"famhealth-service/internal/pkg/utils"
	"net/http"
)

// APIKeyAuth guards admin-only routes. The configured value is a bcrypt hash;
// the plaintext key never leaves the operator's environment.
func (m *Middlewares) APIKeyAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey := r.Header.Get(constvars.HeaderAPIKey)
		if apiKey == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrAPIKeyInvalid(nil))
			return
		}

		if !utils.CheckAPIKeyHash(apiKey, m.InternalConfig.App.AdminAPIKey) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrAPIKeyInvalid(nil))
			return
		}

		next.ServeHTTP(w, r)
	})
}
