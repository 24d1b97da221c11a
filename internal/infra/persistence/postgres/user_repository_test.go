package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"recipebox/internal/domain/entity"
	domainerrors "recipebox/internal/domain/errors"
	"recipebox/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "users"`)).
		WithArgs("cook@example.com", "hashed", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(12)))

	user := &entity.User{Email: "cook@example.com", PasswordHash: "hashed"}
	require.NoError(t, repo.Create(context.Background(), user))

	assert.Equal(t, int64(12), user.ID)
	assert.False(t, user.CreatedAt.IsZero())
	assert.False(t, user.UpdatedAt.IsZero())
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "users"`)).
		WillReturnError(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "idx_users_email"})

	err := repo.Create(context.Background(), &entity.User{Email: "cook@example.com", PasswordHash: "hashed"})
	assert.True(t, errors.Is(err, repository.ErrUserEmailTaken))
}

func TestUserRepository_Create_DatabaseError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "users"`)).
		WillReturnError(errors.New("connection reset"))

	err := repo.Create(context.Background(), &entity.User{Email: "cook@example.com", PasswordHash: "hashed"})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
}

func TestUserRepository_FindByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	created := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE email = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password", "created_at", "updated_at"}).
			AddRow(int64(3), "cook@example.com", "hashed", created, created))

	user, err := repo.FindByEmail(context.Background(), "cook@example.com")
	require.NoError(t, err)
	assert.Equal(t, &entity.User{
		ID:           3,
		Email:        "cook@example.com",
		PasswordHash: "hashed",
		CreatedAt:    created,
		UpdatedAt:    created,
	}, user)
}

func TestUserRepository_FindByEmail_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE email = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password", "created_at", "updated_at"}))

	user, err := repo.FindByEmail(context.Background(), "nobody@example.com")
	assert.Nil(t, user)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}
