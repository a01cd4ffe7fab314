package middleware

import (
	"net/http"
	"time"

	"pet-care-info/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// RequestLog:
// - deja en el contexto un logger con request_id (de chimw.RequestID), method y path;
// - al terminar loguea status, bytes y duración.
// Debe ir después de chimw.RequestID en la cadena.
func RequestLog(base logger.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = logger.Discard()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			l := base.With(map[string]any{
				"request_id": chimw.GetReqID(r.Context()),
				"method":     r.Method,
				"path":       r.URL.Path,
			})

			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(logger.NewContext(r.Context(), l)))

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			fields := map[string]any{
				"status": status,
				"bytes":  ww.BytesWritten(),
				"ms":     time.Since(start).Milliseconds(),
			}
			if status >= 500 {
				l.Warn("request failed", fields)
				return
			}
			l.Info("request", fields)
		})
	}
}
