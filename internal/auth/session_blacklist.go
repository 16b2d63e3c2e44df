package auth

import (
	"context"
	"sync"
	"time"
)

// Blacklist records revoked token IDs until the token would have expired
type Blacklist interface {
	// IsBlacklisted checks if the given JWT ID (jti) is blacklisted.
	IsBlacklisted(jti string) (bool, error)
	// AddToBlacklist adds the given JWT ID (jti) to the blacklist with an expiration time.
	AddToBlacklist(jti string, exp time.Time) error
}

// MemoryBlacklist keeps revoked token IDs in process memory
type MemoryBlacklist struct {
	blacklist map[string]time.Time
	mu        sync.RWMutex
	now       func() time.Time
}

func NewMemoryBlacklist() *MemoryBlacklist {
	return &MemoryBlacklist{
		blacklist: make(map[string]time.Time),
		now:       time.Now,
	}
}

// Run removes expired entries every interval until ctx is done.
func (s *MemoryBlacklist) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.CleanUpExpired()
		}
	}
}

func (s *MemoryBlacklist) CleanUpExpired() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for jti, exp := range s.blacklist {
		if exp.Before(now) {
			delete(s.blacklist, jti)
		}
	}
}

// IsBlacklisted ignores entries that already expired but were not cleaned up yet.
func (s *MemoryBlacklist) IsBlacklisted(jti string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	exp, exists := s.blacklist[jti]
	return exists && !exp.Before(s.now()), nil
}

func (s *MemoryBlacklist) AddToBlacklist(jti string, exp time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.blacklist[jti] = exp
	return nil
}

// Len is the number of entries, expired ones included.
func (s *MemoryBlacklist) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.blacklist)
}
