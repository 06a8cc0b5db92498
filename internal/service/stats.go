package service

import (
	"slovanglik/internal/domain"
	"slovanglik/internal/repository"

	"go.uber.org/zap"
)

// StatsService aggregates per-user word counts for the stats screen
type StatsService struct {
	wordRepo repository.WordRepository
	logger   *zap.Logger
}

// NewStatsService creates a new stats service
func NewStatsService(wordRepo repository.WordRepository, logger *zap.Logger) *StatsService {
	return &StatsService{
		wordRepo: wordRepo,
		logger:   logger,
	}
}

// Summary returns the user's counts per level and category, plus the total
func (s *StatsService) Summary(userID int64) ([]domain.CategoryCount, int, error) {
	counts, err := s.wordRepo.CategoryCounts(userID)
	if err != nil {
		s.logger.Error("Failed to load word counts",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return nil, 0, err
	}

	total := 0
	for _, c := range counts {
		total += c.Count
	}

	return counts, total, nil
}
