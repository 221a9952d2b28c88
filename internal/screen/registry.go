package screen

import (
	"context"
	"sync"
	"time"

	"users-management/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type session struct {
	ctrl     *Controller
	lastSeen time.Time
}

// Registry maps browser session ids to their screen controllers. A session
// idle for longer than the TTL is evicted, which unmounts its screen.
type Registry struct {
	log   *zap.SugaredLogger
	users usecase.UserUsecaseInterface
	ttl   time.Duration
	now   func() time.Time

	mu       sync.Mutex
	sessions map[string]*session
}

// NewRegistry creates an empty registry.
func NewRegistry(log *zap.SugaredLogger, users usecase.UserUsecaseInterface, ttl time.Duration) *Registry {
	return &Registry{
		log:      log.Named("screen"),
		users:    users,
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]*session),
	}
}

// Acquire returns the controller of session id and marks it as used. Unknown
// or expired ids get a fresh session; the returned id is the one to keep.
func (r *Registry) Acquire(id string) (*Controller, string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if s, ok := r.sessions[id]; ok && now.Sub(s.lastSeen) <= r.ttl {
		s.lastSeen = now
		return s.ctrl, id
	}
	delete(r.sessions, id)

	newID := uuid.NewString()
	ctrl := NewController(r.log.With("session", newID), r.users)
	r.sessions[newID] = &session{ctrl: ctrl, lastSeen: now}
	r.log.Debugw("session opened", "session", newID)
	return ctrl, newID
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Sweep evicts idle sessions and returns how many were removed.
func (r *Registry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	evicted := 0
	for id, s := range r.sessions {
		if now.Sub(s.lastSeen) > r.ttl {
			delete(r.sessions, id)
			evicted++
		}
	}
	return evicted
}

// Run sweeps on every interval tick until ctx is done.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.Sweep(); n > 0 {
				r.log.Infow("idle sessions evicted", "count", n, "live", r.Len())
			}
		}
	}
}
