package user

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPGRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	u := &User{ID: "u1", Fullname: "Asha", Email: "asha@example.com", PasswordHash: "h"}
	mock.ExpectExec(`INSERT INTO users`).
		WithArgs(u.ID, u.Fullname, u.Email, u.PasswordHash, "", "", "", "", "", false).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, NewPGRepo(mock).Create(context.Background(), u))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPGRepo_Create_Duplicate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(`INSERT INTO users`).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	err = NewPGRepo(mock).Create(context.Background(), &User{ID: "u1", Email: "dup@example.com"})
	assert.ErrorIs(t, err, ErrAlreadyExist)
}

func TestPGRepo_GetByEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	cols := []string{"id", "fullname", "email", "password_hash", "contact", "address", "city", "country", "profile_picture", "admin", "created_at", "updated_at"}
	now := time.Now().UTC()

	mock.ExpectQuery(`FROM users WHERE email`).
		WithArgs("asha@example.com").
		WillReturnRows(pgxmock.NewRows(cols).
			AddRow("u1", "Asha", "asha@example.com", "h", "", "", "Arusha", "Tanzania", "", false, now, now))
	mock.ExpectQuery(`FROM users WHERE email`).
		WithArgs("ghost@example.com").
		WillReturnRows(pgxmock.NewRows(cols))

	repo := NewPGRepo(mock)
	got, err := repo.GetByEmail(context.Background(), "asha@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Arusha", got.City)

	_, err = repo.GetByEmail(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
