package testutil

import (
	"slovanglik/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) EnsureUser(userID int64, username string) error {
	args := m.Called(userID, username)
	return args.Error(0)
}

func (m *MockUserRepository) GetSelection(userID int64) (*domain.Selection, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Selection), args.Error(1)
}

func (m *MockUserRepository) SetLevel(userID int64, level int) error {
	args := m.Called(userID, level)
	return args.Error(0)
}

func (m *MockUserRepository) SetCategory(userID int64, category string) error {
	args := m.Called(userID, category)
	return args.Error(0)
}

// MockWordRepository is a mock for WordRepository
type MockWordRepository struct {
	mock.Mock
}

func (m *MockWordRepository) Candidates(userID int64, category string, level int) ([]domain.VocabEntry, error) {
	args := m.Called(userID, category, level)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VocabEntry), args.Error(1)
}

func (m *MockWordRepository) Exists(entry domain.VocabEntry) (bool, error) {
	args := m.Called(entry)
	return args.Bool(0), args.Error(1)
}

func (m *MockWordRepository) Insert(entry domain.VocabEntry) error {
	args := m.Called(entry)
	return args.Error(0)
}

func (m *MockWordRepository) DeleteByTranslation(userID int64, translation, category string, level int) (int64, error) {
	args := m.Called(userID, translation, category, level)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWordRepository) CopyDefaults(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockWordRepository) Levels() ([]int, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

func (m *MockWordRepository) Categories(userID int64, level int) ([]string, error) {
	args := m.Called(userID, level)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockWordRepository) CategoryCounts(userID int64) ([]domain.CategoryCount, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategoryCount), args.Error(1)
}
