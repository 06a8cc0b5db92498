package session

import (
	"sync"
	"time"

	"slovanglik/internal/domain"

	"go.uber.org/zap"
)

// Registry keeps per-user quiz sessions. Sessions are created lazily on
// first touch and evicted by Sweep after an idle period, so memory stays
// bounded in a long-running process.
type Registry struct {
	mu      sync.Mutex
	entries map[int64]*entry
	logger  *zap.Logger
}

type entry struct {
	sess     *domain.Session
	lastSeen time.Time
}

// NewRegistry creates an empty session registry.
func NewRegistry(logger *zap.Logger) *Registry {
	return &Registry{
		entries: make(map[int64]*entry),
		logger:  logger,
	}
}

// Get returns the user's session, creating it on first touch, and marks
// it active.
func (r *Registry) Get(userID int64) *domain.Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, exists := r.entries[userID]
	if !exists {
		e = &entry{sess: domain.NewSession()}
		r.entries[userID] = e
		r.logger.Debug("Session created", zap.Int64("user_id", userID))
	}
	e.lastSeen = time.Now()
	return e.sess
}

// Clear drops the user's session entirely. The next Get starts fresh.
func (r *Registry) Clear(userID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, userID)
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Sweep evicts sessions idle for longer than maxIdle and returns how many
// were removed.
func (r *Registry) Sweep(maxIdle time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := time.Now().Add(-maxIdle)
	evicted := 0
	for userID, e := range r.entries {
		if e.lastSeen.Before(cutoff) {
			delete(r.entries, userID)
			evicted++
		}
	}

	if evicted > 0 {
		r.logger.Info("Idle sessions evicted",
			zap.Int("count", evicted),
			zap.Int("remaining", len(r.entries)),
		)
	}
	return evicted
}
