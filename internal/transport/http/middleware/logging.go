package middleware

import (
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/you-humble/parts-inventory/platform/logger"
)

// Logging tags the request context with its request id and writes one
// access log line per request. Must run after chi's RequestID middleware.
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := logger.ContextWithFields(r.Context(),
			logger.String("request_id", chimw.GetReqID(r.Context())),
		)
		r = r.WithContext(ctx)

		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		fields := []logger.Field{
			logger.String("method", r.Method),
			logger.String("path", r.URL.Path),
			logger.Int("status", status),
			logger.Int("bytes", ww.BytesWritten()),
			logger.Duration("duration", time.Since(start)),
		}
		if status >= http.StatusInternalServerError {
			logger.Error(ctx, "http request", fields...)
			return
		}
		logger.Info(ctx, "http request", fields...)
	})
}
