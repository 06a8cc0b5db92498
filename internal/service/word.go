package service

import (
	"fmt"
	"strings"

	"slovanglik/internal/domain"
	"slovanglik/internal/repository"
)

// WordService handles word-list business logic
type WordService struct {
	wordRepo repository.WordRepository
}

// NewWordService creates a new word service
func NewWordService(wordRepo repository.WordRepository) *WordService {
	return &WordService{wordRepo: wordRepo}
}

// Candidates returns the user's entries for the given category and level
func (s *WordService) Candidates(userID int64, category string, level int) ([]domain.VocabEntry, error) {
	return s.wordRepo.Candidates(userID, strings.ToLower(category), level)
}

// AddCustomWord stores a user-supplied pair. The returned entry carries the
// normalized fields even when the add is rejected as a duplicate, so the
// caller can still name the pair in its reply.
func (s *WordService) AddCustomWord(userID int64, native, foreign, category string, level int) (domain.VocabEntry, error) {
	entry := domain.VocabEntry{
		UserID:      userID,
		Word:        strings.ToLower(strings.TrimSpace(foreign)),
		Translation: strings.ToLower(strings.TrimSpace(native)),
		Category:    strings.ToLower(category),
		Level:       level,
		Custom:      true,
	}

	if entry.Word == "" || entry.Translation == "" {
		return entry, fmt.Errorf("word and translation cannot be empty")
	}

	exists, err := s.wordRepo.Exists(entry)
	if err != nil {
		return entry, fmt.Errorf("failed to check for duplicate: %w", err)
	}
	if exists {
		return entry, domain.ErrDuplicate
	}

	return entry, s.wordRepo.Insert(entry)
}

// DeleteWord removes one entry matching the translation under the given
// category and level. Returns domain.ErrNotFound when nothing matched.
func (s *WordService) DeleteWord(userID int64, translation, category string, level int) error {
	translation = strings.ToLower(strings.TrimSpace(translation))
	if translation == "" {
		return domain.ErrNotFound
	}

	deleted, err := s.wordRepo.DeleteByTranslation(userID, translation, strings.ToLower(category), level)
	if err != nil {
		return fmt.Errorf("failed to delete word: %w", err)
	}
	if deleted == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// RefreshDefaults copies the canonical word set into the user's list.
// Already-present pairs and the user's custom entries are left alone,
// so the call is idempotent.
func (s *WordService) RefreshDefaults(userID int64) error {
	return s.wordRepo.CopyDefaults(userID)
}

// Levels returns the difficulty levels of the canonical set
func (s *WordService) Levels() ([]int, error) {
	return s.wordRepo.Levels()
}

// Categories returns the categories a user can study on a level
func (s *WordService) Categories(userID int64, level int) ([]string, error) {
	return s.wordRepo.Categories(userID, level)
}

// HasCategory reports whether the text names an existing category on the
// user's level. Comparison is case-insensitive.
func (s *WordService) HasCategory(userID int64, level int, text string) (bool, error) {
	categories, err := s.wordRepo.Categories(userID, level)
	if err != nil {
		return false, err
	}

	text = strings.ToLower(strings.TrimSpace(text))
	for _, c := range categories {
		if c == text {
			return true, nil
		}
	}
	return false, nil
}
