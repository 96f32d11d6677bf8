// Package service implements address checking and deny-list management on
// top of the email parsing core.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"mailcheck/internal/validate/models"
	dErrors "mailcheck/pkg/domain-errors"
	"mailcheck/pkg/email"
	"mailcheck/pkg/platform/sentinel"
	"mailcheck/pkg/requestcontext"
)

// Store is the deny-list dependency.
type Store interface {
	Add(ctx context.Context, entry *models.DomainEntry) error
	Remove(ctx context.Context, domain string) error
	Lookup(ctx context.Context, domain string, now time.Time) (*models.DomainEntry, error)
	List(ctx context.Context, now time.Time) ([]*models.DomainEntry, error)
}

// Cache is the verdict cache dependency.
type Cache interface {
	Get(ctx context.Context, key string) (*models.CheckResult, error)
	Set(ctx context.Context, key string, result *models.CheckResult, ttl time.Duration) error
}

// HostVerifier checks that an addr-spec's domain can receive mail.
type HostVerifier interface {
	Verify(ctx context.Context, addrSpec string) error
}

// Metrics is the subset of the feature metrics the service records.
type Metrics interface {
	ObserveCheck(verdict string)
	IncrementParseFailures()
	IncrementCacheHits()
	IncrementCacheMisses()
	SetBlockedDomains(count int)
}

// Service checks email addresses against format, deny-list, and optional
// host policies.
type Service struct {
	store    Store
	cache    Cache
	verifier HostVerifier // nil disables host verification
	logger   *slog.Logger
	metrics  Metrics
	cacheTTL time.Duration
}

// New constructs the validate service.
func New(store Store, cache Cache, verifier HostVerifier, logger *slog.Logger, metrics Metrics, cacheTTL time.Duration) *Service {
	return &Service{
		store:    store,
		cache:    cache,
		verifier: verifier,
		logger:   logger,
		metrics:  metrics,
		cacheTTL: cacheTTL,
	}
}

// Check classifies one address string. Unparsable input is a normal outcome
// (VerdictInvalid), not an error; errors are reserved for infrastructure
// failures.
func (s *Service) Check(ctx context.Context, raw string) (*models.CheckResult, error) {
	now := requestcontext.Now(ctx)

	addr, err := email.Parse(raw)
	if err != nil {
		s.metrics.IncrementParseFailures()
		s.metrics.ObserveCheck(string(models.VerdictInvalid))
		return &models.CheckResult{
			Input:   raw,
			Verdict: models.VerdictInvalid,
			Reason:  err.Error(),
		}, nil
	}

	canonical := addr.String()
	if cached, err := s.cache.Get(ctx, canonical); err == nil {
		s.metrics.IncrementCacheHits()
		s.metrics.ObserveCheck(string(cached.Verdict))
		cached.Input = raw
		cached.Cached = true
		return cached, nil
	} else if !errors.Is(err, sentinel.ErrNotFound) {
		s.logger.WarnContext(ctx, "verdict cache get failed", "error", err)
	}
	s.metrics.IncrementCacheMisses()

	result := &models.CheckResult{
		Input:       raw,
		Verdict:     models.VerdictValid,
		Canonical:   canonical,
		Addr:        addr.Addr(),
		Local:       addr.Local(),
		Domain:      addr.Domain(),
		DisplayName: addr.Name(),
	}
	if addr.Name() == "" {
		first, last := email.DeriveName(addr)
		result.SuggestedName = first + " " + last
	}

	entry, err := s.store.Lookup(ctx, addr.Domain(), now)
	switch {
	case err == nil:
		result.Verdict = models.VerdictBlocked
		result.Reason = blockReason(entry)
	case !errors.Is(err, sentinel.ErrNotFound):
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "domain list lookup failed")
	}

	if result.Verdict == models.VerdictValid && s.verifier != nil {
		if err := s.verifier.Verify(ctx, addr.Addr()); err != nil {
			result.Verdict = models.VerdictInvalid
			result.Reason = fmt.Sprintf("domain does not accept mail: %v", err)
		}
	}

	if err := s.cache.Set(ctx, canonical, result, s.cacheTTL); err != nil {
		s.logger.WarnContext(ctx, "verdict cache set failed", "error", err)
	}

	s.metrics.ObserveCheck(string(result.Verdict))
	return result, nil
}

// Normalize returns the canonical rendering of an address string. Unlike
// Check, unparsable input is an error here: there is no canonical form to
// return.
func (s *Service) Normalize(ctx context.Context, raw string) (string, error) {
	addr, err := email.Parse(raw)
	if err != nil {
		s.metrics.IncrementParseFailures()
		return "", dErrors.Wrap(err, dErrors.CodeInvalidInput, err.Error())
	}
	return addr.String(), nil
}

// BlockDomainRequest carries the parameters for deny-listing a domain.
type BlockDomainRequest struct {
	Domain string
	Reason string
	// TTL, when set, expires the entry after the given duration.
	TTL *time.Duration
}

// BlockDomain adds a domain to the deny list.
func (s *Service) BlockDomain(ctx context.Context, req BlockDomainRequest) (*models.DomainEntry, error) {
	domain := strings.ToLower(strings.TrimSpace(req.Domain))
	if domain == "" {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "domain is required")
	}
	if strings.ContainsAny(domain, "@ ") {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "domain must be a bare host name")
	}

	now := requestcontext.Now(ctx)
	entry := &models.DomainEntry{
		ID:        uuid.New(),
		Domain:    domain,
		Reason:    req.Reason,
		CreatedAt: now,
	}
	if req.TTL != nil {
		expiresAt := now.Add(*req.TTL)
		entry.ExpiresAt = &expiresAt
	}

	if err := s.store.Add(ctx, entry); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return nil, dErrors.New(dErrors.CodeConflict, "domain is already blocked")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "add blocked domain failed")
	}

	s.logger.InfoContext(ctx, "domain blocked",
		"domain", domain,
		"expires_at", entry.ExpiresAt,
	)
	s.refreshBlockedGauge(ctx, now)
	return entry, nil
}

// UnblockDomain removes a domain from the deny list.
func (s *Service) UnblockDomain(ctx context.Context, domain string) error {
	domain = strings.ToLower(strings.TrimSpace(domain))
	if domain == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "domain is required")
	}

	if err := s.store.Remove(ctx, domain); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotFound, "domain is not blocked")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "remove blocked domain failed")
	}

	s.logger.InfoContext(ctx, "domain unblocked", "domain", domain)
	s.refreshBlockedGauge(ctx, requestcontext.Now(ctx))
	return nil
}

// ListBlockedDomains returns all live deny-list entries.
func (s *Service) ListBlockedDomains(ctx context.Context) ([]*models.DomainEntry, error) {
	entries, err := s.store.List(ctx, requestcontext.Now(ctx))
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "list blocked domains failed")
	}
	s.metrics.SetBlockedDomains(len(entries))
	return entries, nil
}

func (s *Service) refreshBlockedGauge(ctx context.Context, now time.Time) {
	entries, err := s.store.List(ctx, now)
	if err != nil {
		return
	}
	s.metrics.SetBlockedDomains(len(entries))
}

func blockReason(entry *models.DomainEntry) string {
	if entry.Reason != "" {
		return fmt.Sprintf("domain %s is blocked: %s", entry.Domain, entry.Reason)
	}
	return fmt.Sprintf("domain %s is blocked", entry.Domain)
}
