package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

type CORSMiddleware struct {
	cors *cors.Cors
}

func NewCORSMiddleware(allowedOrigins []string) *CORSMiddleware {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	return &CORSMiddleware{
		cors: cors.New(cors.Options{
			AllowedOrigins: allowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Content-Type", "Authorization", "X-Request-ID"},
			MaxAge:         600,
		}),
	}
}

func (m *CORSMiddleware) Handle(next http.Handler) http.Handler {
	return m.cors.Handler(next)
}
