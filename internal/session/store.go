// Package session holds browser session credentials in memory.
//
// Each session maps an opaque cookie value to the operator's Cloudflare API
// token. Tokens are never written to disk or to the audit log; closing the
// session, hitting the idle TTL, or restarting the process discards them.
package session

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"
)

// CookieName is the session cookie carried by the browser.
const CookieName = "cfpanel_session"

type entry struct {
	token     string
	expiresAt time.Time
}

// Store is a thread-safe TTL-bound session store.
type Store struct {
	mu       sync.Mutex
	ttl      time.Duration
	entries  map[string]*entry
	sweeping bool
	stopped  bool

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewStore creates a store whose sessions expire after ttl of inactivity.
func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &Store{
		ttl:     ttl,
		entries: map[string]*entry{},
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
}

// Create stores the token under a fresh random session ID and returns the ID.
func (s *Store) Create(token string) (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	id := hex.EncodeToString(buf)

	s.mu.Lock()
	s.entries[id] = &entry{token: token, expiresAt: time.Now().Add(s.ttl)}
	s.mu.Unlock()
	return id, nil
}

// Token returns the token for a session ID. Each successful lookup renews
// the idle TTL. Expired entries are removed on access.
func (s *Store) Token(id string) (string, bool) {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.entries[id]
	if e == nil {
		return "", false
	}
	if !e.expiresAt.After(now) {
		delete(s.entries, id)
		return "", false
	}
	e.expiresAt = now.Add(s.ttl)
	return e.token, true
}

// Delete drops a session and its token.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.entries, id)
	s.mu.Unlock()
}

// Len returns the number of live sessions, removing expired ones.
func (s *Store) Len() int {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	for id, e := range s.entries {
		if !e.expiresAt.After(now) {
			delete(s.entries, id)
		}
	}
	return len(s.entries)
}

// StartSweeper launches a background goroutine that evicts expired sessions
// at the given interval. Call Stop to terminate it. The sweeper is not
// restartable; StartSweeper after Stop is a no-op.
func (s *Store) StartSweeper(interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	s.mu.Lock()
	if s.sweeping || s.stopped {
		s.mu.Unlock()
		return
	}
	s.sweeping = true
	s.mu.Unlock()

	go func() {
		defer close(s.doneCh)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-s.stopCh:
				return
			case <-ticker.C:
				s.Len()
			}
		}
	}()
}

// Stop terminates the sweeper goroutine, if running.
func (s *Store) Stop() {
	s.mu.Lock()
	sweeping := s.sweeping
	s.sweeping = false
	s.stopped = true
	s.mu.Unlock()
	if !sweeping {
		return
	}
	close(s.stopCh)
	<-s.doneCh
}
