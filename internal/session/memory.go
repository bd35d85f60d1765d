package session

import (
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// MemoryStore keeps sessions in-process. The default backend; suitable for a
// single instance, lost on restart (the remote session survives and the
// browser just re-authenticates via the boot identity check).
type MemoryStore struct {
	cache *cache.Cache
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	// Purge expired entries at a fraction of the TTL.
	return &MemoryStore{cache: cache.New(ttl, ttl/6)}
}

// Save stores a snapshot of the entry, so the caller's pointer stays private.
func (s *MemoryStore) Save(entry *Entry) {
	stored := *entry
	s.cache.Set(entry.ID.String(), &stored, cache.DefaultExpiration)
}

// Get returns a copy of the entry. Requests mutate their own copy and write
// it back with Save; two requests on the same cookie never share a pointer.
// The redis backend gets the same isolation from its JSON round-trip.
func (s *MemoryStore) Get(id uuid.UUID) (*Entry, bool) {
	if x, found := s.cache.Get(id.String()); found {
		entry := *x.(*Entry)
		return &entry, true
	}
	return nil, false
}

func (s *MemoryStore) Delete(id uuid.UUID) {
	s.cache.Delete(id.String())
}
