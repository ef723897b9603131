package middlewares

import (
	"context"
	"famhealth-service/internal/pkg/constvars"
	"famhealth-service/internal/pkg/exceptions"
	"famhealth-service/internal/pkg/utils"
	"net/http"
	"strings"
)

// Authentication verifies the bearer token issued by the identity provider
// and stashes the caller's identity in the request context.
func (m *Middlewares) Authentication(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		claims, err := utils.ParseSessionJWT(tokenString, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.ContextUserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, constvars.ContextPhoneNumberKey, claims.PhoneNumber)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
