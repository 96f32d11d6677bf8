package domainlist

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"mailcheck/internal/validate/models"
	"mailcheck/pkg/platform/sentinel"
	txcontext "mailcheck/pkg/platform/tx"
)

// PostgresStore persists the deny list in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed deny list.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

type dbExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// execer returns the context transaction when one is present, the pool
// otherwise. Writes go through this so callers can batch them atomically.
func (s *PostgresStore) execer(ctx context.Context) dbExecutor {
	if tx, ok := txcontext.From(ctx); ok {
		return tx
	}
	return s.db
}

func (s *PostgresStore) Add(ctx context.Context, entry *models.DomainEntry) error {
	// An expired row may be overwritten; a live row is a conflict. The
	// upsert's WHERE clause makes that decision in one round trip.
	query := `
		INSERT INTO blocked_domains (id, domain, reason, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (domain) DO UPDATE SET
			id = EXCLUDED.id,
			reason = EXCLUDED.reason,
			created_at = EXCLUDED.created_at,
			expires_at = EXCLUDED.expires_at
		WHERE blocked_domains.expires_at IS NOT NULL
			AND blocked_domains.expires_at <= EXCLUDED.created_at
	`
	res, err := s.execer(ctx).ExecContext(ctx, query,
		entry.ID,
		strings.ToLower(entry.Domain),
		entry.Reason,
		entry.CreatedAt,
		nullTime(entry.ExpiresAt),
	)
	if err != nil {
		return fmt.Errorf("add blocked domain: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("add blocked domain: %w", err)
	}
	if affected == 0 {
		return sentinel.ErrConflict
	}
	return nil
}

func (s *PostgresStore) Remove(ctx context.Context, domain string) error {
	res, err := s.execer(ctx).ExecContext(ctx,
		`DELETE FROM blocked_domains WHERE domain = $1`, strings.ToLower(domain))
	if err != nil {
		return fmt.Errorf("remove blocked domain: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("remove blocked domain: %w", err)
	}
	if affected == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *PostgresStore) Lookup(ctx context.Context, domain string, now time.Time) (*models.DomainEntry, error) {
	query := `
		SELECT id, domain, reason, created_at, expires_at
		FROM blocked_domains
		WHERE domain = $1 AND (expires_at IS NULL OR expires_at > $2)
	`
	row := s.db.QueryRowContext(ctx, query, strings.ToLower(domain), now)
	entry, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("lookup blocked domain: %w", err)
	}
	return entry, nil
}

func (s *PostgresStore) List(ctx context.Context, now time.Time) ([]*models.DomainEntry, error) {
	query := `
		SELECT id, domain, reason, created_at, expires_at
		FROM blocked_domains
		WHERE expires_at IS NULL OR expires_at > $1
		ORDER BY domain
	`
	rows, err := s.db.QueryContext(ctx, query, now)
	if err != nil {
		return nil, fmt.Errorf("list blocked domains: %w", err)
	}
	defer rows.Close()

	var entries []*models.DomainEntry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("list blocked domains: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list blocked domains: %w", err)
	}
	return entries, nil
}

func (s *PostgresStore) RemoveExpiredAt(ctx context.Context, now time.Time) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM blocked_domains WHERE expires_at IS NOT NULL AND expires_at <= $1`, now)
	if err != nil {
		return fmt.Errorf("cleanup blocked domains: %w", err)
	}
	return nil
}

// StartCleanup runs periodic cleanup of expired entries until ctx is
// cancelled.
func (s *PostgresStore) StartCleanup(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := s.RemoveExpiredAt(ctx, time.Now()); err != nil {
				return err
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner) (*models.DomainEntry, error) {
	var entry models.DomainEntry
	var expiresAt sql.NullTime
	if err := row.Scan(&entry.ID, &entry.Domain, &entry.Reason, &entry.CreatedAt, &expiresAt); err != nil {
		return nil, err
	}
	if expiresAt.Valid {
		entry.ExpiresAt = &expiresAt.Time
	}
	return &entry, nil
}

func nullTime(value *time.Time) sql.NullTime {
	if value == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *value, Valid: true}
}
