// Package service provides business logic for EPC record lookups.
package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"retrofit_analysis_backend/internal/epc/client"
	"retrofit_analysis_backend/internal/epc/transport"
	"retrofit_analysis_backend/platform/logger"
)

// cacheEntry holds a cached EPC record with expiration. A nil record is
// cached too, so repeated lookups for certificate-less properties stay cheap.
type cacheEntry struct {
	record    *transport.EpcRecord
	expiresAt time.Time
}

// Service handles EPC lookups with caching.
type Service struct {
	client   *client.Client
	log      *logger.Logger
	cache    map[string]cacheEntry
	cacheMu  sync.RWMutex
	cacheTTL time.Duration
}

// New creates a new EPC lookup service.
func New(client *client.Client, log *logger.Logger) *Service {
	return &Service{
		client:   client,
		log:      log,
		cache:    make(map[string]cacheEntry),
		cacheTTL: 24 * time.Hour, // certificates are re-lodged rarely
	}
}

// GetByAddress fetches the EPC record for an address, using cache when available.
// Returns nil when the property has no certificate.
func (s *Service) GetByAddress(ctx context.Context, address string) (*transport.EpcRecord, error) {
	cacheKey := buildCacheKey(address)

	if record, ok := s.getFromCache(cacheKey); ok {
		return record, nil
	}

	record, err := s.client.SearchByAddress(ctx, address)
	if err != nil {
		return nil, err
	}

	s.setCache(cacheKey, record)

	return record, nil
}

// ClearCache removes all cached entries.
func (s *Service) ClearCache() {
	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()
	s.cache = make(map[string]cacheEntry)
}

func (s *Service) getFromCache(key string) (*transport.EpcRecord, bool) {
	s.cacheMu.RLock()
	defer s.cacheMu.RUnlock()

	entry, ok := s.cache[key]
	if !ok {
		return nil, false
	}
	if time.Now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.record, true
}

func (s *Service) setCache(key string, record *transport.EpcRecord) {
	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()

	s.cache[key] = cacheEntry{
		record:    record,
		expiresAt: time.Now().Add(s.cacheTTL),
	}
}

func buildCacheKey(address string) string {
	return "addr:" + strings.ToLower(strings.Join(strings.Fields(address), " "))
}
