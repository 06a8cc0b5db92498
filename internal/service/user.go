package service

import (
	"strings"

	"slovanglik/internal/domain"
	"slovanglik/internal/repository"
)

// UserService handles user accounts and their persistent level/category
// selection. The selection outlives restarts; quiz progress does not.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// EnsureUser creates the user record if it doesn't exist
func (s *UserService) EnsureUser(userID int64, username string) error {
	return s.userRepo.EnsureUser(userID, username)
}

// Selection returns the user's persisted level/category choice
func (s *UserService) Selection(userID int64) (*domain.Selection, error) {
	return s.userRepo.GetSelection(userID)
}

// SelectLevel persists the chosen difficulty level
func (s *UserService) SelectLevel(userID int64, level int) error {
	return s.userRepo.SetLevel(userID, level)
}

// SelectCategory persists the chosen topic category
func (s *UserService) SelectCategory(userID int64, category string) error {
	return s.userRepo.SetCategory(userID, strings.ToLower(strings.TrimSpace(category)))
}
