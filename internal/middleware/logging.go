package middleware

import (
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// RequestLogger logs one line per request after it completes. Client errors
// stay at Info like any other request; 5xx is logged at Error. It must run after RequestID and
// Identify to pick up their context values.
func RequestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			fields := []zap.Field{
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", status),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("duration", time.Since(start)),
			}
			if id := chimw.GetReqID(r.Context()); id != "" {
				fields = append(fields, zap.String("request_id", id))
			}
			if claims, ok := ClaimsFromContext(r.Context()); ok {
				fields = append(fields, zap.String("user_id", claims.UserID))
			}

			level := zapcore.InfoLevel
			if status >= 500 {
				level = zapcore.ErrorLevel
			}
			if ce := logger.Check(level, "request completed"); ce != nil {
				ce.Write(fields...)
			}
		})
	}
}
