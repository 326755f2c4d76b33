package middleware

import (
	"fmt"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/vfg2006/restaurant-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/restaurant-dashboard-api/pkg/log"
)

const slowRequest = 500 * time.Millisecond

// LoggingMiddleware tags the request with a correlation ID and logs its start
// and outcome.
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, correlationID := log.WithCorrelationID(r.Context())
			r = r.WithContext(ctx)

			lrw := newLoggingResponseWriter(w)
			startTime := time.Now()
			isDev := log.IsDevelopment()

			if isDev {
				log.L.WithFields(log.Fields{
					"method": r.Method,
					"path":   r.URL.Path,
				}).Info("→ Request started")
			} else {
				log.L.WithFields(log.Fields{
					"correlation_id": correlationID,
					"remote_addr":    r.RemoteAddr,
					"method":         r.Method,
					"path":           r.URL.Path,
					"query":          r.URL.RawQuery,
					"user_agent":     r.UserAgent(),
				}).Info("Request started")
			}

			next.ServeHTTP(lrw, r)

			responseTime := time.Since(startTime)
			fields := log.Fields{
				"correlation_id":  correlationID,
				"method":          r.Method,
				"path":            r.URL.Path,
				"status_code":     lrw.statusCode,
				"duration_ms":     responseTime.Milliseconds(),
				"dataset_version": lrw.Header().Get("X-Dataset-Version"),
			}
			logger := log.L.WithFields(fields)

			msg := "Request finished"
			if isDev {
				symbol := "✓"
				if lrw.statusCode >= 400 {
					symbol = "✗"
				}
				msg = fmt.Sprintf("%s Finished in %s", symbol, formatDuration(responseTime))
			}

			switch {
			case lrw.statusCode >= 500:
				logger.Error(msg)
			case lrw.statusCode >= 400:
				logger.Warn(msg)
			default:
				logger.Info(msg)
			}

			if responseTime > slowRequest {
				logger.Warnf("Slow request: %s %s (%s)", r.Method, r.URL.Path, responseTime)
			}
		})
	}
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%d µs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%d ms", d.Milliseconds())
	default:
		return fmt.Sprintf("%.2f s", d.Seconds())
	}
}

type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newLoggingResponseWriter(w http.ResponseWriter) *loggingResponseWriter {
	return &loggingResponseWriter{w, http.StatusOK}
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

// LogPanicMiddleware turns a panic into a logged 500.
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					stack := make([]byte, 4096)
					stackSize := runtime.Stack(stack, false)
					stackTrace := string(stack[:stackSize])

					logger := log.ForContext(r.Context()).WithFields(log.Fields{
						"error":  err,
						"method": r.Method,
						"path":   r.URL.Path,
					})
					logger.Error("Unhandled panic")

					if log.IsDevelopment() {
						fmt.Fprintf(os.Stderr, "\n\n=== STACK TRACE ===\n%s\n=================\n\n", stackTrace)
					} else {
						logger.WithField("stack_trace", stackTrace).Error("Panic stack trace")
					}

					apiErrors.WriteError(w, apiErrors.ErrInternalServer, "internal server error", nil)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
