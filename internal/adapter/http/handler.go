package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"adgate/internal/core/domain"
	"adgate/internal/core/port"
)

// Observer receives the latency of every routed request.
type Observer interface {
	ObserveHTTP(route, method string, status int, d time.Duration)
}

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP in front of the decisioning core.
type Handler struct {
	svc    port.MatchUseCase
	logger *slog.Logger
	router chi.Router
}

// Option configures optional parts of the handler.
type Option func(*handlerOptions)

type handlerOptions struct {
	observer Observer
	metrics  http.Handler
}

// WithMetrics times every request with o and serves exposition on /metrics.
func WithMetrics(o Observer, exposition http.Handler) Option {
	return func(opts *handlerOptions) {
		opts.observer = o
		opts.metrics = exposition
	}
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.MatchUseCase, logger *slog.Logger, opts ...Option) *Handler {
	var o handlerOptions
	for _, opt := range opts {
		opt(&o)
	}

	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	if o.observer != nil {
		r.Use(observe(o.observer))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/ad/match", h.handleMatch)
		r.Post("/ad/impression", h.handleImpression)
		r.Post("/cache/campaigns/invalidate", h.handleInvalidateCampaigns)
		r.Post("/cache/blocklist/invalidate", h.handleInvalidateBlocklist)
		r.Get("/stats/funnel", h.handleFunnelStats)
	})
	if o.metrics != nil {
		r.Method(http.MethodGet, "/metrics", o.metrics)
	}
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func observe(o Observer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			route := "unmatched"
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				route = rctx.RoutePattern()
			}
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			o.ObserveHTTP(route, r.Method, status, time.Since(start))
		})
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeError maps validation failures to 400 and everything else to 500.
func (h *Handler) writeError(w http.ResponseWriter, op string, err error) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: ve.Error()})
		return
	}
	h.logger.Error(op+" error", slog.Any("error", err))
	h.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return false
	}
	return true
}
