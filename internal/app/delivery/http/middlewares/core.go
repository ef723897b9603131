package middlewares

import (
	"context"
	"famhealth-service/internal/pkg/constvars"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type responseRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (rec *responseRecorder) WriteHeader(code int) {
	rec.statusCode = code
	rec.ResponseWriter.WriteHeader(code)
}

func (m *Middlewares) RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(constvars.HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_REQUEST_ID_KEY, requestID)
		w.Header().Set(constvars.HeaderRequestID, requestID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middlewares) Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

		m.Log.Info("API request started",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String("method", r.Method),
			zap.String("endpoint", r.URL.Path),
			zap.String("remote_addr", r.RemoteAddr),
			zap.String("user_agent", r.UserAgent()),
		)

		rec := &responseRecorder{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rec, r)

		m.Log.Info("API request completed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String("method", r.Method),
			zap.String("endpoint", r.URL.Path),
			zap.Int("status_code", rec.statusCode),
			zap.Duration("duration", time.Since(start)),
			zap.Bool("success", rec.statusCode < 400),
		)
	})
}
