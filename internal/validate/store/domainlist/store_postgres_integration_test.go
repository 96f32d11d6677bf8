//go:build integration

package domainlist_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"mailcheck/internal/validate/models"
	"mailcheck/internal/validate/store/domainlist"
	"mailcheck/pkg/platform/sentinel"
	"mailcheck/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *domainlist.PostgresStore
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.postgres = containers.NewPostgresContainer(s.T())
	s.Require().NoError(s.postgres.Apply(context.Background(), domainlist.Schema))
	s.store = domainlist.NewPostgres(s.postgres.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(context.Background(), "blocked_domains"))
}

func entry(domain string, expiresAt *time.Time) *models.DomainEntry {
	return &models.DomainEntry{
		ID:        uuid.New(),
		Domain:    domain,
		Reason:    "integration",
		CreatedAt: time.Now().UTC(),
		ExpiresAt: expiresAt,
	}
}

func (s *PostgresStoreSuite) TestAddAndLookup() {
	ctx := context.Background()
	now := time.Now().UTC()

	s.Require().NoError(s.store.Add(ctx, entry("Spam.Example", nil)))

	got, err := s.store.Lookup(ctx, "SPAM.EXAMPLE", now)
	s.Require().NoError(err)
	s.Equal("spam.example", got.Domain)
	s.Equal("integration", got.Reason)
	s.Nil(got.ExpiresAt)
}

func (s *PostgresStoreSuite) TestLookupMissing() {
	_, err := s.store.Lookup(context.Background(), "nope.example", time.Now().UTC())
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestDuplicateAddConflicts() {
	ctx := context.Background()

	s.Require().NoError(s.store.Add(ctx, entry("spam.example", nil)))
	s.ErrorIs(s.store.Add(ctx, entry("spam.example", nil)), sentinel.ErrConflict)
}

func (s *PostgresStoreSuite) TestExpiredEntryCanBeReAdded() {
	ctx := context.Background()
	past := time.Now().UTC().Add(-time.Hour)

	s.Require().NoError(s.store.Add(ctx, entry("spam.example", &past)))
	s.Require().NoError(s.store.Add(ctx, entry("spam.example", nil)))

	got, err := s.store.Lookup(ctx, "spam.example", time.Now().UTC())
	s.Require().NoError(err)
	s.Nil(got.ExpiresAt)
}

func (s *PostgresStoreSuite) TestExpiredEntryIsNotReturned() {
	ctx := context.Background()
	now := time.Now().UTC()
	past := now.Add(-time.Minute)

	s.Require().NoError(s.store.Add(ctx, entry("spam.example", &past)))

	_, err := s.store.Lookup(ctx, "spam.example", now)
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestRemove() {
	ctx := context.Background()

	s.Require().NoError(s.store.Add(ctx, entry("spam.example", nil)))
	s.Require().NoError(s.store.Remove(ctx, "spam.example"))
	s.ErrorIs(s.store.Remove(ctx, "spam.example"), sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestListSkipsExpired() {
	ctx := context.Background()
	now := time.Now().UTC()
	past := now.Add(-time.Minute)
	future := now.Add(time.Hour)

	s.Require().NoError(s.store.Add(ctx, entry("dead.example", &past)))
	s.Require().NoError(s.store.Add(ctx, entry("live.example", &future)))
	s.Require().NoError(s.store.Add(ctx, entry("forever.example", nil)))

	entries, err := s.store.List(ctx, now)
	s.Require().NoError(err)

	domains := make([]string, 0, len(entries))
	for _, e := range entries {
		domains = append(domains, e.Domain)
	}
	s.ElementsMatch([]string{"live.example", "forever.example"}, domains)
}

func (s *PostgresStoreSuite) TestRemoveExpiredAt() {
	ctx := context.Background()
	now := time.Now().UTC()
	past := now.Add(-time.Minute)

	s.Require().NoError(s.store.Add(ctx, entry("dead.example", &past)))
	s.Require().NoError(s.store.Add(ctx, entry("live.example", nil)))

	s.Require().NoError(s.store.RemoveExpiredAt(ctx, now))

	entries, err := s.store.List(ctx, now)
	s.Require().NoError(err)
	s.Len(entries, 1)
	s.Equal("live.example", entries[0].Domain)
}

func (s *PostgresStoreSuite) TestSeedTx() {
	ctx := context.Background()
	now := time.Now().UTC()

	s.Require().NoError(s.store.Add(ctx, entry("spam.example", nil)))

	err := s.store.SeedTx(ctx, []string{"spam.example", "junk.example"}, now)
	s.Require().NoError(err)

	entries, err := s.store.List(ctx, now)
	s.Require().NoError(err)
	s.Len(entries, 2)

	got, err := s.store.Lookup(ctx, "spam.example", now)
	s.Require().NoError(err)
	s.Equal("integration", got.Reason, "existing entry should survive reseeding")
}
