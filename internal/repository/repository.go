package repository

import (
	"slovanglik/internal/domain"
)

// UserRepository defines user data operations
type UserRepository interface {
	EnsureUser(userID int64, username string) error
	GetSelection(userID int64) (*domain.Selection, error)
	SetLevel(userID int64, level int) error
	SetCategory(userID int64, category string) error
}

// WordRepository defines word data operations
type WordRepository interface {
	Candidates(userID int64, category string, level int) ([]domain.VocabEntry, error)
	Exists(entry domain.VocabEntry) (bool, error)
	Insert(entry domain.VocabEntry) error
	DeleteByTranslation(userID int64, translation, category string, level int) (int64, error)
	CopyDefaults(userID int64) error
	Levels() ([]int, error)
	Categories(userID int64, level int) ([]string, error)
	CategoryCounts(userID int64) ([]domain.CategoryCount, error)
}
