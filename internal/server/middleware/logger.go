package middleware

import (
	"net/http"
	"time"

	"github.com/fekuna/ecommerce-inventory-service/pkg/logger"
	"github.com/fekuna/ecommerce-inventory-service/pkg/response"
	"go.uber.org/zap"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (w *statusRecorder) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *statusRecorder) Status() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

// Logger writes one structured line per completed request.
func Logger(log logger.ZapLogger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			recorder := &statusRecorder{ResponseWriter: w}
			start := time.Now()

			next.ServeHTTP(recorder, r)

			log.Info("request completed",
				zap.String("request_id", GetRequestID(r.Context())),
				zap.String("method", r.Method),
				zap.String("url", r.URL.String()),
				zap.Int("status", recorder.Status()),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}

// Recoverer converts panics into the generic 500 envelope.
func Recoverer(log logger.ZapLogger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.Error("panic recovered",
						zap.String("request_id", GetRequestID(r.Context())),
						zap.String("method", r.Method),
						zap.String("url", r.URL.String()),
						zap.Any("panic", rec),
					)
					response.InternalServerError(w, "System is down. Please try again in a while.")
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
