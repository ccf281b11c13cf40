package cache

import (
	"sync"
	"time"

	"companysite/infrastructure/viewstate"
)

// ViewSessionCache stores view sessions by token.
type ViewSessionCache struct {
	mu       sync.RWMutex
	sessions map[string]*viewstate.Session
}

func NewViewSessionCache() *ViewSessionCache {
	return &ViewSessionCache{sessions: make(map[string]*viewstate.Session)}
}

func (c *ViewSessionCache) AddSession(s *viewstate.Session) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sessions[s.ID] = s
}

func (c *ViewSessionCache) FindSessionBySessionToken(token string) (*viewstate.Session, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.sessions[token]
	return s, ok
}

// TouchSession returns the live session for token and pushes its expiry to
// now+ttl. An expired session is removed and reported as not found.
func (c *ViewSessionCache) TouchSession(token string, now time.Time, ttl time.Duration) (*viewstate.Session, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.sessions[token]
	if !ok {
		return nil, false
	}
	if s.Expired(now) {
		delete(c.sessions, token)
		return nil, false
	}
	s.ExpiresAt = now.Add(ttl)
	return s, true
}

func (c *ViewSessionCache) DeleteSessionBySessionToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.sessions, token)
}

// PurgeExpired drops every session that expired before now and returns how
// many were removed.
func (c *ViewSessionCache) PurgeExpired(now time.Time) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	removed := 0
	for token, s := range c.sessions {
		if s.Expired(now) {
			delete(c.sessions, token)
			removed++
		}
	}
	return removed
}

func (c *ViewSessionCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.sessions)
}
