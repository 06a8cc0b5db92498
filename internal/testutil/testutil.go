package testutil

import (
	"time"

	"slovanglik/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestEntry creates a vocabulary entry fixture
func NewTestEntry(userID int64, word, translation, category string, level int) domain.VocabEntry {
	return domain.VocabEntry{
		UserID:      userID,
		Word:        word,
		Translation: translation,
		Category:    category,
		Level:       level,
		CreatedAt:   time.Now(),
	}
}

// NewTestSelection creates an active level/category selection fixture
func NewTestSelection(userID int64, level int, category string) *domain.Selection {
	return &domain.Selection{
		UserID:   userID,
		Level:    level,
		Category: category,
	}
}

// NewTestEntries builds a candidate set in one category and level from
// word/translation pairs
func NewTestEntries(userID int64, category string, level int, pairs map[string]string) []domain.VocabEntry {
	entries := make([]domain.VocabEntry, 0, len(pairs))
	for word, translation := range pairs {
		entries = append(entries, NewTestEntry(userID, word, translation, category, level))
	}
	return entries
}
