package requestrepo_test

import (
	"context"
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helphub/internal/helphub/adapters/postgres"
	"helphub/internal/helphub/domain/entities"
	"helphub/pkg/logger"
)

func testContext(t *testing.T) context.Context {
	t.Helper()

	testLogger, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err)
	return logger.NewContext(context.Background(), testLogger)
}

func TestRequestRepository_Accept(t *testing.T) {
	ctx := testContext(t)

	t.Run("Успешное принятие переводит статус", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("UPDATE requests\\s+SET status = \\$3, accepted_by = \\$2").
			WithArgs(int64(1), "helper@example.com", entities.StatusAccepted, entities.StatusNew).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		repo := postgres.NewRequestRepository(mock)
		accepted, err := repo.Accept(ctx, 1, "helper@example.com")

		require.NoError(t, err)
		assert.True(t, accepted)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Заявка уже принята - перехода нет", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("UPDATE requests\\s+SET status = \\$3, accepted_by = \\$2").
			WithArgs(int64(1), "helper@example.com", entities.StatusAccepted, entities.StatusNew).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		repo := postgres.NewRequestRepository(mock)
		accepted, err := repo.Accept(ctx, 1, "helper@example.com")

		require.NoError(t, err)
		assert.False(t, accepted)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Ошибка БД", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("UPDATE requests\\s+SET status = \\$3, accepted_by = \\$2").
			WithArgs(int64(1), "helper@example.com", entities.StatusAccepted, entities.StatusNew).
			WillReturnError(errors.New("database connection error"))

		repo := postgres.NewRequestRepository(mock)
		accepted, err := repo.Accept(ctx, 1, "helper@example.com")

		assert.False(t, accepted)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "error accepting request")

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRequestRepository_Release(t *testing.T) {
	ctx := testContext(t)

	t.Run("Исполнитель возвращает заявку", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("UPDATE requests\\s+SET status = \\$3, accepted_by = NULL").
			WithArgs(int64(1), "helper@example.com", entities.StatusNew, entities.StatusAccepted).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		repo := postgres.NewRequestRepository(mock)
		released, err := repo.Release(ctx, 1, "helper@example.com")

		require.NoError(t, err)
		assert.True(t, released)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Чужую заявку вернуть нельзя", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("UPDATE requests\\s+SET status = \\$3, accepted_by = NULL").
			WithArgs(int64(1), "stranger@example.com", entities.StatusNew, entities.StatusAccepted).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		repo := postgres.NewRequestRepository(mock)
		released, err := repo.Release(ctx, 1, "stranger@example.com")

		require.NoError(t, err)
		assert.False(t, released)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}
