// Package store keeps live game sessions in memory. Sessions are lost when
// the process exits.
package store

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vancomm/minesweeper-mind/internal/mines"
)

var (
	ErrNotFound = errors.New("session not found")
	ErrFull     = errors.New("too many live sessions")
)

// Entry owns one session. All access to the session goes through Do so that
// moves on the same game never interleave.
type Entry struct {
	ID        string
	CreatedAt time.Time

	mu       sync.Mutex
	session  *mines.Session
	lastUsed time.Time
}

func (e *Entry) Do(fn func(s *mines.Session) error) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.lastUsed = time.Now()
	return fn(e.session)
}

func (e *Entry) idleSince(now time.Time) time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	return now.Sub(e.lastUsed)
}

type Registry struct {
	mu       sync.RWMutex
	entries  map[string]*Entry
	capacity int
}

// New returns a registry holding at most capacity sessions; zero means no
// limit.
func New(capacity int) *Registry {
	return &Registry{
		entries:  make(map[string]*Entry),
		capacity: capacity,
	}
}

func (r *Registry) Add(s *mines.Session) (*Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.capacity > 0 && len(r.entries) >= r.capacity {
		return nil, ErrFull
	}

	now := time.Now()
	e := &Entry{
		ID:        uuid.NewString(),
		CreatedAt: now,
		session:   s,
		lastUsed:  now,
	}
	r.entries[e.ID] = e
	return e, nil
}

func (r *Registry) Get(id string) (*Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if e, ok := r.entries[id]; ok {
		return e, nil
	}
	return nil, ErrNotFound
}

func (r *Registry) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[id]; !ok {
		return ErrNotFound
	}
	delete(r.entries, id)
	return nil
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Evict drops sessions nobody touched for longer than maxIdle and returns
// how many were removed.
func (r *Registry) Evict(maxIdle time.Duration) int {
	now := time.Now()

	r.mu.Lock()
	defer r.mu.Unlock()

	evicted := 0
	for id, e := range r.entries {
		if e.idleSince(now) > maxIdle {
			delete(r.entries, id)
			evicted++
		}
	}
	return evicted
}
