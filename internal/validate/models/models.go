// Package models defines the validate feature's domain types.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Verdict is the outcome of an address check.
type Verdict string

const (
	// VerdictValid: the address parsed and passed every enabled policy.
	VerdictValid Verdict = "valid"
	// VerdictInvalid: the address failed parsing or host verification.
	VerdictInvalid Verdict = "invalid"
	// VerdictBlocked: the address parsed but its domain is deny-listed.
	VerdictBlocked Verdict = "blocked"
)

// CheckResult is the full outcome of checking one address string.
type CheckResult struct {
	// Input is the raw string as submitted.
	Input string `json:"input"`
	// Verdict classifies the outcome.
	Verdict Verdict `json:"verdict"`
	// Reason explains non-valid verdicts in human terms.
	Reason string `json:"reason,omitempty"`

	// The fields below are populated only when the input parsed.
	Canonical   string `json:"canonical,omitempty"`
	Addr        string `json:"addr,omitempty"`
	Local       string `json:"local,omitempty"`
	Domain      string `json:"domain,omitempty"`
	DisplayName string `json:"display_name,omitempty"`

	// SuggestedName is derived from the local part when the address
	// carries no display name.
	SuggestedName string `json:"suggested_name,omitempty"`

	// Cached reports whether the result was served from the verdict cache.
	Cached bool `json:"cached"`
}

// DomainEntry is one deny-listed domain.
type DomainEntry struct {
	ID        uuid.UUID  `json:"id"`
	Domain    string     `json:"domain"`
	Reason    string     `json:"reason,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// Expired reports whether the entry is past its expiry at the given time.
// Entries without an expiry never expire.
func (e *DomainEntry) Expired(now time.Time) bool {
	return e.ExpiresAt != nil && now.After(*e.ExpiresAt)
}
