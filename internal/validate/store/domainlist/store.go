// Package domainlist stores the deny list of email domains.
package domainlist

import (
	"context"
	"time"

	"mailcheck/internal/validate/models"
)

// Store is the deny-list persistence contract. Implementations return
// sentinel.ErrNotFound for missing domains and sentinel.ErrConflict when an
// entry for the domain already exists.
type Store interface {
	// Add inserts a deny-list entry. The domain is matched
	// case-insensitively; implementations store it lowercased.
	Add(ctx context.Context, entry *models.DomainEntry) error

	// Remove deletes the entry for a domain.
	Remove(ctx context.Context, domain string) error

	// Lookup returns the unexpired entry for a domain as of now.
	Lookup(ctx context.Context, domain string, now time.Time) (*models.DomainEntry, error)

	// List returns all unexpired entries as of now.
	List(ctx context.Context, now time.Time) ([]*models.DomainEntry, error)

	// RemoveExpiredAt deletes entries that have expired as of the given
	// time. Background cleanup passes wall-clock time.
	RemoveExpiredAt(ctx context.Context, now time.Time) error
}
