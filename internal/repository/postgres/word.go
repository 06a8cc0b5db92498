package postgres

import (
	"database/sql"

	"slovanglik/internal/domain"
)

// WordRepo implements repository.WordRepository
type WordRepo struct {
	db *sql.DB
}

// NewWordRepo creates a new word repository
func NewWordRepo(db *sql.DB) *WordRepo {
	return &WordRepo{db: db}
}

// Candidates returns the user's entries for a category and level
func (r *WordRepo) Candidates(userID int64, category string, level int) ([]domain.VocabEntry, error) {
	query := `
		SELECT id, user_id, word, translation, category, level, is_custom, created_at
		FROM user_words
		WHERE user_id = $1 AND category = $2 AND level = $3
		ORDER BY id
	`

	rows, err := r.db.Query(query, userID, category, level)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.VocabEntry
	for rows.Next() {
		var e domain.VocabEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Word, &e.Translation, &e.Category, &e.Level, &e.Custom, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// Exists checks the natural key (owner, word, translation, category, level)
func (r *WordRepo) Exists(entry domain.VocabEntry) (bool, error) {
	var exists bool
	query := `
		SELECT EXISTS (
			SELECT 1 FROM user_words
			WHERE user_id = $1 AND word = $2 AND translation = $3
				AND category = $4 AND level = $5
		)
	`
	err := r.db.QueryRow(query, entry.UserID, entry.Word, entry.Translation, entry.Category, entry.Level).Scan(&exists)
	return exists, err
}

// Insert adds a new entry to the user's word list
func (r *WordRepo) Insert(entry domain.VocabEntry) error {
	query := `
		INSERT INTO user_words (user_id, word, translation, category, level, is_custom)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(query, entry.UserID, entry.Word, entry.Translation, entry.Category, entry.Level, entry.Custom)
	return err
}

// DeleteByTranslation removes at most one entry matching (owner, translation,
// category, level) and returns the number of rows removed. The English word
// is deliberately not part of the match key, mirroring the add flow's
// prompt-by-translation counterpart.
func (r *WordRepo) DeleteByTranslation(userID int64, translation, category string, level int) (int64, error) {
	query := `
		DELETE FROM user_words
		WHERE id = (
			SELECT id FROM user_words
			WHERE user_id = $1 AND translation = $2 AND category = $3 AND level = $4
			ORDER BY id
			LIMIT 1
		)
	`
	res, err := r.db.Exec(query, userID, translation, category, level)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// CopyDefaults copies the canonical word set into the user's list,
// skipping pairs the user already has. Custom entries are untouched.
func (r *WordRepo) CopyDefaults(userID int64) error {
	query := `
		INSERT INTO user_words (user_id, word, translation, category, level, is_custom)
		SELECT $1, w.word, w.translation, w.category, w.level, FALSE
		FROM words w
		WHERE NOT EXISTS (
			SELECT 1 FROM user_words uw
			WHERE uw.user_id = $1 AND uw.word = w.word AND uw.translation = w.translation
				AND uw.category = w.category AND uw.level = w.level
		)
	`
	_, err := r.db.Exec(query, userID)
	return err
}

// Levels returns the distinct difficulty levels of the canonical set
func (r *WordRepo) Levels() ([]int, error) {
	query := `SELECT DISTINCT level FROM words ORDER BY level`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var levels []int
	for rows.Next() {
		var level int
		if err := rows.Scan(&level); err != nil {
			return nil, err
		}
		levels = append(levels, level)
	}

	return levels, rows.Err()
}

// Categories returns the categories available to a user on a level:
// canonical ones plus any the user created through custom entries
func (r *WordRepo) Categories(userID int64, level int) ([]string, error) {
	query := `
		SELECT category FROM words WHERE level = $2
		UNION
		SELECT category FROM user_words WHERE user_id = $1 AND level = $2
		ORDER BY category
	`

	rows, err := r.db.Query(query, userID, level)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}

	return categories, rows.Err()
}

// CategoryCounts returns the user's word counts grouped by level and category
func (r *WordRepo) CategoryCounts(userID int64) ([]domain.CategoryCount, error) {
	query := `
		SELECT level, category, COUNT(*)
		FROM user_words
		WHERE user_id = $1
		GROUP BY level, category
		ORDER BY level, category
	`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []domain.CategoryCount
	for rows.Next() {
		var c domain.CategoryCount
		if err := rows.Scan(&c.Level, &c.Category, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}

	return counts, rows.Err()
}
