package catalog

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultSessionTTL is how long an idle viewer session keeps its snapshot.
	DefaultSessionTTL = 30 * time.Minute
	// DefaultMaxSessions bounds how many snapshots are held at once.
	DefaultMaxSessions = 64
)

// Sessions pins one catalog snapshot per viewer session, so lightbox
// indices keep addressing the catalog they were rendered from even when
// the source returns something different on the next load.
type Sessions struct {
	ttl   time.Duration
	max   int
	now   func() time.Time
	newID func() string

	mu      sync.Mutex
	entries map[string]*sessionEntry
}

type sessionEntry struct {
	catalog  Catalog
	lastUsed time.Time
}

// NewSessions returns a store whose entries expire after ttl of inactivity.
// Non-positive arguments fall back to the defaults.
func NewSessions(ttl time.Duration, maxSessions int) *Sessions {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	if maxSessions <= 0 {
		maxSessions = DefaultMaxSessions
	}
	return &Sessions{
		ttl:     ttl,
		max:     maxSessions,
		now:     time.Now,
		newID:   uuid.NewString,
		entries: make(map[string]*sessionEntry),
	}
}

// Put stores c under a new session id. When the store is full the least
// recently used session is evicted.
func (s *Sessions) Put(c Catalog) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.expireLocked(now)
	for len(s.entries) >= s.max {
		s.evictOldestLocked()
	}
	id := s.newID()
	s.entries[id] = &sessionEntry{catalog: c, lastUsed: now}
	return id
}

// Get returns the snapshot for id and refreshes its expiry.
func (s *Sessions) Get(id string) (Catalog, bool) {
	if id == "" {
		return Catalog{}, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[id]
	if !ok {
		return Catalog{}, false
	}
	now := s.now()
	if now.Sub(entry.lastUsed) >= s.ttl {
		delete(s.entries, id)
		return Catalog{}, false
	}
	entry.lastUsed = now
	return entry.catalog, true
}

// Len returns the number of live sessions.
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expireLocked(s.now())
	return len(s.entries)
}

func (s *Sessions) expireLocked(now time.Time) {
	for id, entry := range s.entries {
		if now.Sub(entry.lastUsed) >= s.ttl {
			delete(s.entries, id)
		}
	}
}

func (s *Sessions) evictOldestLocked() {
	var (
		oldestID string
		oldest   time.Time
	)
	for id, entry := range s.entries {
		if oldestID == "" || entry.lastUsed.Before(oldest) {
			oldestID, oldest = id, entry.lastUsed
		}
	}
	delete(s.entries, oldestID)
}
