package gist

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/daniel/resume-mcp/internal/types"
)

// CacheEntry owns one immutable document snapshot and the time it was
// fetched. Entries are replaced whole, never merged.
type CacheEntry struct {
	Doc       *types.ResumeDocument
	FetchedAt time.Time
}

// Expired reports whether the entry's age exceeds ttl at the given time.
func (e *CacheEntry) Expired(ttl time.Duration, now time.Time) bool {
	return now.Sub(e.FetchedAt) > ttl
}

// Store fronts the remote bundle with a single-slot TTL cache. A cache hit
// costs zero I/O. Concurrent miss callers share one in-flight remote fetch.
// When a refetch fails and a prior snapshot exists, the stale snapshot is
// served with a warning; the entry is never evicted by a failure.
type Store struct {
	client *Client
	gistID string
	ttl    time.Duration
	logger *zap.Logger

	mu    sync.Mutex
	entry *CacheEntry
	group singleflight.Group
}

// NewStore creates a store for one bundle id with the given cache TTL.
func NewStore(client *Client, gistID string, ttl time.Duration, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		client: client,
		gistID: gistID,
		ttl:    ttl,
		logger: logger,
	}
}

// GetResume returns the current document snapshot, fetching from the remote
// store only on a cold or expired cache.
func (s *Store) GetResume(ctx context.Context) (*types.ResumeDocument, error) {
	if doc := s.fresh(time.Now()); doc != nil {
		return doc, nil
	}

	v, err, _ := s.group.Do(s.gistID, func() (any, error) {
		// A concurrent flight may have refilled the slot while this
		// caller was queueing behind the group.
		if doc := s.fresh(time.Now()); doc != nil {
			return doc, nil
		}

		doc, err := s.client.FetchResume(ctx, s.gistID)
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		s.entry = &CacheEntry{Doc: doc, FetchedAt: time.Now()}
		s.mu.Unlock()

		s.logger.Debug("resume snapshot refreshed", zap.String("gist_id", s.gistID))
		return doc, nil
	})
	if err != nil {
		s.mu.Lock()
		entry := s.entry
		s.mu.Unlock()
		if entry != nil {
			s.logger.Warn("serving stale resume snapshot after failed refetch",
				zap.String("gist_id", s.gistID),
				zap.Time("fetched_at", entry.FetchedAt),
				zap.Error(err))
			return entry.Doc, nil
		}
		return nil, err
	}

	return v.(*types.ResumeDocument), nil
}

// Invalidate clears the cache slot, forcing a remote fetch on the next call.
func (s *Store) Invalidate() {
	s.mu.Lock()
	s.entry = nil
	s.mu.Unlock()
}

// Cached reports whether a snapshot is currently held, expired or not.
func (s *Store) Cached() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entry != nil
}

// fresh returns the snapshot when the slot holds an unexpired entry.
func (s *Store) fresh(now time.Time) *types.ResumeDocument {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.entry != nil && !s.entry.Expired(s.ttl, now) {
		return s.entry.Doc
	}
	return nil
}
