package domainlist

import (
	"context"
	"strings"
	"sync"
	"time"

	"mailcheck/internal/validate/models"
	"mailcheck/pkg/platform/sentinel"
)

// MemoryStore keeps the deny list in process memory. It is the default for
// development and single-instance deployments; use PostgresStore when
// entries must survive restarts.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]*models.DomainEntry
}

// NewMemory creates an empty in-memory deny list.
func NewMemory() *MemoryStore {
	return &MemoryStore{entries: make(map[string]*models.DomainEntry)}
}

func (s *MemoryStore) Add(ctx context.Context, entry *models.DomainEntry) error {
	domain := strings.ToLower(entry.Domain)

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.entries[domain]; ok && !existing.Expired(entry.CreatedAt) {
		return sentinel.ErrConflict
	}

	stored := *entry
	stored.Domain = domain
	s.entries[domain] = &stored
	return nil
}

func (s *MemoryStore) Remove(ctx context.Context, domain string) error {
	domain = strings.ToLower(domain)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[domain]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.entries, domain)
	return nil
}

func (s *MemoryStore) Lookup(ctx context.Context, domain string, now time.Time) (*models.DomainEntry, error) {
	domain = strings.ToLower(domain)

	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[domain]
	if !ok || entry.Expired(now) {
		return nil, sentinel.ErrNotFound
	}

	found := *entry
	return &found, nil
}

func (s *MemoryStore) List(ctx context.Context, now time.Time) ([]*models.DomainEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]*models.DomainEntry, 0, len(s.entries))
	for _, entry := range s.entries {
		if entry.Expired(now) {
			continue
		}
		found := *entry
		entries = append(entries, &found)
	}
	return entries, nil
}

func (s *MemoryStore) RemoveExpiredAt(ctx context.Context, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for domain, entry := range s.entries {
		if entry.Expired(now) {
			delete(s.entries, domain)
		}
	}
	return nil
}
