package domainlist

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"mailcheck/internal/validate/models"
	"mailcheck/pkg/platform/sentinel"
	txcontext "mailcheck/pkg/platform/tx"
)

// Seed loads a static deny list into a store at startup. Domains already
// present are left untouched; seeding a domain that exists is not an error.
// Seeded entries never expire.
func Seed(ctx context.Context, s Store, domains []string, now time.Time) error {
	for _, domain := range domains {
		entry := &models.DomainEntry{
			ID:        uuid.New(),
			Domain:    domain,
			Reason:    "seed list",
			CreatedAt: now,
		}
		if err := s.Add(ctx, entry); err != nil {
			if errors.Is(err, sentinel.ErrConflict) {
				continue
			}
			return err
		}
	}
	return nil
}

// SeedTx seeds a PostgreSQL-backed deny list inside a single transaction,
// so a partially applied seed list never becomes visible.
func (s *PostgresStore) SeedTx(ctx context.Context, domains []string, now time.Time) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed transaction: %w", err)
	}
	if err := Seed(txcontext.WithTx(ctx, dbTx), s, domains, now); err != nil {
		_ = dbTx.Rollback()
		return err
	}
	return dbTx.Commit()
}
