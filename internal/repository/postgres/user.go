package postgres

import (
	"database/sql"

	"slovanglik/internal/domain"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// EnsureUser creates the user row if it does not exist yet
func (r *UserRepo) EnsureUser(userID int64, username string) error {
	query := `
		INSERT INTO users (user_id, username)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO NOTHING
	`
	_, err := r.db.Exec(query, userID, username)
	return err
}

// GetSelection returns the user's persisted level/category choice.
// A user who has never picked anything gets a zero selection.
func (r *UserRepo) GetSelection(userID int64) (*domain.Selection, error) {
	sel := &domain.Selection{UserID: userID}
	query := `SELECT level, category FROM user_selections WHERE user_id = $1`
	err := r.db.QueryRow(query, userID).Scan(&sel.Level, &sel.Category)

	if err == sql.ErrNoRows {
		return sel, nil
	}
	if err != nil {
		return nil, err
	}

	return sel, nil
}

// SetLevel stores the chosen difficulty level
func (r *UserRepo) SetLevel(userID int64, level int) error {
	query := `
		INSERT INTO user_selections (user_id, level)
		VALUES ($1, $2)
		ON CONFLICT (user_id)
		DO UPDATE SET level = EXCLUDED.level
	`
	_, err := r.db.Exec(query, userID, level)
	return err
}

// SetCategory stores the chosen topic category
func (r *UserRepo) SetCategory(userID int64, category string) error {
	query := `
		INSERT INTO user_selections (user_id, category)
		VALUES ($1, $2)
		ON CONFLICT (user_id)
		DO UPDATE SET category = EXCLUDED.category
	`
	_, err := r.db.Exec(query, userID, category)
	return err
}
