package postgres

import (
	"database/sql"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserRepoMock(t *testing.T) (*UserRepo, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return NewUserRepo(db), mock, db
}

func TestUserRepo_EnsureUser(t *testing.T) {
	repo, mock, db := newUserRepoMock(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO users").
		WithArgs(int64(123), "testuser").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.EnsureUser(123, "testuser")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_EnsureUser_AlreadyExists(t *testing.T) {
	repo, mock, db := newUserRepoMock(t)
	defer db.Close()

	// ON CONFLICT DO NOTHING affects zero rows, still no error
	mock.ExpectExec("INSERT INTO users").
		WithArgs(int64(123), "testuser").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.EnsureUser(123, "testuser")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_GetSelection(t *testing.T) {
	repo, mock, db := newUserRepoMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"level", "category"}).AddRow(3, "мебель")
	mock.ExpectQuery("SELECT level, category FROM user_selections").
		WithArgs(int64(123)).
		WillReturnRows(rows)

	sel, err := repo.GetSelection(123)

	assert.NoError(t, err)
	require.NotNil(t, sel)
	assert.Equal(t, int64(123), sel.UserID)
	assert.Equal(t, 3, sel.Level)
	assert.Equal(t, "мебель", sel.Category)
	assert.True(t, sel.Active())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_GetSelection_NoRow(t *testing.T) {
	repo, mock, db := newUserRepoMock(t)
	defer db.Close()

	mock.ExpectQuery("SELECT level, category FROM user_selections").
		WithArgs(int64(123)).
		WillReturnError(sql.ErrNoRows)

	sel, err := repo.GetSelection(123)

	assert.NoError(t, err)
	require.NotNil(t, sel)
	assert.Equal(t, int64(123), sel.UserID)
	assert.Zero(t, sel.Level)
	assert.Empty(t, sel.Category)
	assert.False(t, sel.Active())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_GetSelection_QueryError(t *testing.T) {
	repo, mock, db := newUserRepoMock(t)
	defer db.Close()

	mock.ExpectQuery("SELECT level, category FROM user_selections").
		WithArgs(int64(123)).
		WillReturnError(fmt.Errorf("connection refused"))

	sel, err := repo.GetSelection(123)

	assert.Error(t, err)
	assert.Nil(t, sel)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_SetLevel(t *testing.T) {
	repo, mock, db := newUserRepoMock(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO user_selections").
		WithArgs(int64(123), 3).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SetLevel(123, 3)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_SetCategory(t *testing.T) {
	repo, mock, db := newUserRepoMock(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO user_selections").
		WithArgs(int64(123), "мебель").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SetCategory(123, "мебель")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
