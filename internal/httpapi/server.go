package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/hamed0406/endpointmonitor/internal/httpapi/middleware"
	"github.com/hamed0406/endpointmonitor/internal/metrics"
	"github.com/hamed0406/endpointmonitor/internal/stats"
)

// Server is the optional read-only status API. It exposes the aggregator's
// current snapshot; it never mutates anything.
type Server struct {
	Logger *zap.Logger
	Stats  *stats.Aggregator
	Keys   []string
}

func NewServer(l *zap.Logger, agg *stats.Aggregator, keys []string) *Server {
	return &Server{Logger: l, Stats: agg, Keys: keys}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.AllowAll().Handler)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireKey(s.Keys))
		r.Get("/api/availability", s.handleAvailability)
		r.Method(http.MethodGet, "/metrics", metrics.Handler())
	})

	return r
}

func (s *Server) handleAvailability(w http.ResponseWriter, r *http.Request) {
	snap := s.Stats.Snapshot()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(snap); err != nil {
		s.Logger.Warn("availability_encode_error", zap.Error(err))
	}
}
