package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"crowdfund/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds the ledger use case to execute business logic, an optional event
// stream handler and a logger for structured logging. Routes are registered
// on a chi.Router for convenient method handling.
type Handler struct {
	svc    port.LedgerUseCase
	stream http.Handler
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. stream serves
// GET /api/v1/events/stream and may be nil, in which case the route is not
// registered.
func NewHandler(svc port.LedgerUseCase, stream http.Handler, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, stream: stream, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.handleHealthz)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/deadline", h.handleDeadline)

		r.Get("/campaigns", h.handleListCampaigns)
		r.Get("/campaigns/{id}", h.handleGetCampaign)
		r.Get("/campaigns/{id}/escrow", h.handleEscrow)
		r.Group(func(r chi.Router) {
			r.Use(requireIdentity)
			r.Post("/campaigns", h.handleCreateCampaign)
			r.Post("/campaigns/{id}/pledges", h.handlePledge)
			r.Post("/campaigns/{id}/settle", h.handleSettle)
		})

		r.Get("/accounts/{identity}/balance", h.handleBalance)

		r.Get("/events", h.handleEvents)
		if stream != nil {
			r.Get("/events/stream", stream.ServeHTTP)
		}
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; log and move on
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
