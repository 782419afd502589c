package http

import (
	"net/http"

	"clinic-voice-tools/internal/delivery/http/handler"
	"clinic-voice-tools/internal/delivery/http/middleware"
	"clinic-voice-tools/pkg/response"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	router                  *mux.Router
	toolHandler             *handler.ToolHandler
	corsMiddleware          *middleware.CORSMiddleware
	requestLoggerMiddleware *middleware.RequestLoggerMiddleware
	metricsGatherer         prometheus.Gatherer
}

func NewRouter(
	toolHandler *handler.ToolHandler,
	corsMiddleware *middleware.CORSMiddleware,
	requestLoggerMiddleware *middleware.RequestLoggerMiddleware,
	metricsGatherer prometheus.Gatherer,
) *Router {
	return &Router{
		router:                  mux.NewRouter(),
		toolHandler:             toolHandler,
		corsMiddleware:          corsMiddleware,
		requestLoggerMiddleware: requestLoggerMiddleware,
		metricsGatherer:         metricsGatherer,
	}
}

func (r *Router) Setup() http.Handler {
	// Health check
	r.router.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Metrics
	if r.metricsGatherer != nil {
		r.router.Handle("/metrics", promhttp.HandlerFor(r.metricsGatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	}

	// Voice agent tools
	r.router.HandleFunc("/check-slots", r.toolHandler.CheckSlots).Methods(http.MethodPost)
	r.router.HandleFunc("/book-slot", r.toolHandler.BookSlot).Methods(http.MethodPost)

	r.router.Use(r.requestLoggerMiddleware.Handle)

	// CORS wraps the router so preflight requests are answered before
	// method matching.
	return r.corsMiddleware.Handle(r.router)
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	response.Health(w)
}
