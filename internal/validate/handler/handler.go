// Package handler is the thin HTTP layer for the validate feature. It
// delegates to the service and keeps transport concerns out of the domain.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"mailcheck/internal/validate/models"
	"mailcheck/internal/validate/service"
	"mailcheck/pkg/platform/httputil"
	"mailcheck/pkg/requestcontext"
)

// Service defines the operations the handler exposes.
type Service interface {
	Check(ctx context.Context, raw string) (*models.CheckResult, error)
	Normalize(ctx context.Context, raw string) (string, error)
	BlockDomain(ctx context.Context, req service.BlockDomainRequest) (*models.DomainEntry, error)
	UnblockDomain(ctx context.Context, domain string) error
	ListBlockedDomains(ctx context.Context) ([]*models.DomainEntry, error)
}

// Handler wires validate endpoints to the validate service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a validate handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the validate endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/v1/check", h.HandleCheck)
	r.Post("/v1/normalize", h.HandleNormalize)
	r.Get("/v1/domains", h.HandleListDomains)
	r.Post("/v1/domains", h.HandleBlockDomain)
	r.Delete("/v1/domains/{domain}", h.HandleUnblockDomain)
	r.Get("/healthz", h.HandleHealth)
}

// HandleCheck handles POST /v1/check.
func (h *Handler) HandleCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()

	req, err := httputil.Decode[CheckRequest](r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.WriteError(w, err)
		return
	}

	result, err := h.service.Check(ctx, *req.Address)
	if err != nil {
		h.logger.ErrorContext(ctx, "address check failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "address checked",
		"request_id", requestcontext.RequestID(ctx),
		"verdict", result.Verdict,
		"cached", result.Cached,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, result)
}

// HandleNormalize handles POST /v1/normalize.
func (h *Handler) HandleNormalize(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, err := httputil.Decode[NormalizeRequest](r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.WriteError(w, err)
		return
	}

	canonical, err := h.service.Normalize(ctx, *req.Address)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{"canonical": canonical})
}

// HandleListDomains handles GET /v1/domains.
func (h *Handler) HandleListDomains(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.ListBlockedDomains(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if entries == nil {
		entries = []*models.DomainEntry{}
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"domains": entries})
}

// HandleBlockDomain handles POST /v1/domains.
func (h *Handler) HandleBlockDomain(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, err := httputil.Decode[BlockDomainRequest](r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	ttl, err := req.ParsedTTL()
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	entry, err := h.service.BlockDomain(ctx, service.BlockDomainRequest{
		Domain: req.Domain,
		Reason: req.Reason,
		TTL:    ttl,
	})
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, entry)
}

// HandleUnblockDomain handles DELETE /v1/domains/{domain}.
func (h *Handler) HandleUnblockDomain(w http.ResponseWriter, r *http.Request) {
	domain := chi.URLParam(r, "domain")
	if err := h.service.UnblockDomain(r.Context(), domain); err != nil {
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleHealth handles GET /healthz.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
