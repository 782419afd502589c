package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type contextKey string

const (
	RequestIDKey    contextKey = "request_id"
	RequestIDHeader            = "X-Request-ID"
)

type RequestLoggerMiddleware struct {
	log *logrus.Logger
}

func NewRequestLoggerMiddleware(log *logrus.Logger) *RequestLoggerMiddleware {
	return &RequestLoggerMiddleware{log: log}
}

// Handle tags each request with an ID (echoed in X-Request-ID) and logs its
// start and completion.
func (m *RequestLoggerMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		reqID := r.Header.Get(RequestIDHeader)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, reqID)

		entry := m.log.WithFields(logrus.Fields{
			"method":     r.Method,
			"path":       r.URL.Path,
			"request_id": reqID,
		})
		entry.WithField("remote_ip", r.RemoteAddr).Info("request started")

		ctx := context.WithValue(r.Context(), RequestIDKey, reqID)
		next.ServeHTTP(w, r.WithContext(ctx))

		entry.WithField("duration_ms", time.Since(start).Milliseconds()).Info("request completed")
	})
}

// GetRequestIDFromContext returns the request ID set by the logger middleware.
func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	reqID, ok := ctx.Value(RequestIDKey).(string)
	return reqID, ok
}
