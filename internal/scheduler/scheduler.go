package scheduler

import (
	"time"

	"slovanglik/internal/session"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
)

const (
	// sweepInterval is how often idle sessions are looked for
	sweepInterval = 30 * time.Minute
	// sessionMaxIdle is how long a user may be silent before their quiz
	// session is dropped
	sessionMaxIdle = 12 * time.Hour
)

// Scheduler manages the application's periodic jobs
type Scheduler struct {
	scheduler *gocron.Scheduler
	sessions  *session.Registry
	logger    *zap.Logger
}

// New creates a new scheduler instance
func New(sessions *session.Registry, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		sessions:  sessions,
		logger:    logger,
	}
}

// Start begins running all scheduled tasks in the background
func (s *Scheduler) Start() {
	s.scheduler.Every(sweepInterval).Do(s.sweepSessions)
	s.scheduler.StartAsync()
}

// Stop terminates all scheduled tasks
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// sweepSessions evicts quiz sessions idle for longer than sessionMaxIdle
func (s *Scheduler) sweepSessions() {
	evicted := s.sessions.Sweep(sessionMaxIdle)
	if evicted > 0 {
		s.logger.Info("Session sweep finished",
			zap.Int("evicted", evicted),
			zap.Int("remaining", s.sessions.Len()),
		)
	}
}
