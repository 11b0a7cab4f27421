package userrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helphub/internal/helphub/adapters/postgres"
	"helphub/internal/helphub/domain/entities"
	"helphub/pkg/logger"
)

func TestUserRepository_FindByEmail(t *testing.T) {
	ctx := context.Background()
	testLogger, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err)
	ctx = logger.NewContext(ctx, testLogger)

	now := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("Успешный поиск по email", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("FROM users\\s+WHERE lower\\(email\\) = lower\\(\\$1\\)").
			WithArgs("TARAS@example.com").
			WillReturnRows(
				pgxmock.NewRows(userColumns()).
					AddRow("user-uuid", "Шевченко", "Тарас", "Григорович", entities.GenderMale,
						"+380", "501234567", "taras@example.com", "hash", now, now),
			)

		repo := postgres.NewUserRepository(mock)
		user, err := repo.FindByEmail(ctx, "TARAS@example.com")

		require.NoError(t, err)
		assert.Equal(t, "user-uuid", user.ID)
		assert.Equal(t, "taras@example.com", user.Email)
		assert.Equal(t, "+380501234567", user.FullPhone())

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Пользователь не найден", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("FROM users").
			WithArgs("nobody@example.com").
			WillReturnError(pgx.ErrNoRows)

		repo := postgres.NewUserRepository(mock)
		user, err := repo.FindByEmail(ctx, "nobody@example.com")

		assert.Nil(t, user)
		assert.ErrorIs(t, err, entities.ErrUserNotFound)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_FindByID(t *testing.T) {
	ctx := context.Background()
	testLogger, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err)
	ctx = logger.NewContext(ctx, testLogger)

	now := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("Успешный поиск по ID", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("FROM users\\s+WHERE id = \\$1").
			WithArgs("user-uuid").
			WillReturnRows(
				pgxmock.NewRows(userColumns()).
					AddRow("user-uuid", "Шевченко", "Тарас", "Григорович", entities.GenderMale,
						"+380", "501234567", "taras@example.com", "hash", now, now),
			)

		repo := postgres.NewUserRepository(mock)
		user, err := repo.FindByID(ctx, "user-uuid")

		require.NoError(t, err)
		assert.Equal(t, "taras@example.com", user.Email)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Пользователь не найден", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("FROM users").
			WithArgs("missing-uuid").
			WillReturnError(pgx.ErrNoRows)

		repo := postgres.NewUserRepository(mock)
		user, err := repo.FindByID(ctx, "missing-uuid")

		assert.Nil(t, user)
		assert.ErrorIs(t, err, entities.ErrUserNotFound)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}
