package requestrepo_test

import (
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helphub/internal/helphub/adapters/postgres"
	"helphub/internal/helphub/domain/entities"
)

func requestColumns() []string {
	return []string{"id", "title", "description", "lat", "lng", "author_email", "accepted_by", "status", "created_at"}
}

func TestRequestRepository_Create(t *testing.T) {
	ctx := testContext(t)

	input := entities.NewHelpRequest("Потрібна допомога", "Продукти", 50.4501, 30.5234, "author@example.com")
	now := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("Успешное создание заявки", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("INSERT INTO requests .+").
			WithArgs(input.Title, input.Description, input.Lat, input.Lng, input.AuthorEmail, entities.StatusNew).
			WillReturnRows(
				pgxmock.NewRows(requestColumns()).
					AddRow(int64(1), input.Title, input.Description, input.Lat, input.Lng,
						input.AuthorEmail, nil, entities.StatusNew, now),
			)

		repo := postgres.NewRequestRepository(mock)
		created, err := repo.Create(ctx, input)

		require.NoError(t, err)
		assert.Equal(t, int64(1), created.ID)
		assert.Equal(t, entities.StatusNew, created.Status)
		assert.Nil(t, created.AcceptedBy)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Ошибка БД", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("INSERT INTO requests .+").
			WithArgs(input.Title, input.Description, input.Lat, input.Lng, input.AuthorEmail, entities.StatusNew).
			WillReturnError(errors.New("database connection error"))

		repo := postgres.NewRequestRepository(mock)
		created, err := repo.Create(ctx, input)

		assert.Nil(t, created)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "error creating request")

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRequestRepository_GetByID(t *testing.T) {
	ctx := testContext(t)
	now := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("Успешный поиск принятой заявки", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		helper := "helper@example.com"
		mock.ExpectQuery("FROM requests\\s+WHERE id = \\$1").
			WithArgs(int64(7)).
			WillReturnRows(
				pgxmock.NewRows(requestColumns()).
					AddRow(int64(7), "Потрібна допомога", "Продукти", 50.4501, 30.5234,
						"author@example.com", &helper, entities.StatusAccepted, now),
			)

		repo := postgres.NewRequestRepository(mock)
		request, err := repo.GetByID(ctx, 7)

		require.NoError(t, err)
		assert.Equal(t, entities.StatusAccepted, request.Status)
		require.NotNil(t, request.AcceptedBy)
		assert.Equal(t, helper, *request.AcceptedBy)
		assert.True(t, request.IsParticipant("author@example.com"))
		assert.True(t, request.IsParticipant(helper))
		assert.False(t, request.IsParticipant("stranger@example.com"))

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Заявка не найдена", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("FROM requests\\s+WHERE id = \\$1").
			WithArgs(int64(42)).
			WillReturnError(pgx.ErrNoRows)

		repo := postgres.NewRequestRepository(mock)
		request, err := repo.GetByID(ctx, 42)

		assert.Nil(t, request)
		assert.ErrorIs(t, err, entities.ErrRequestNotFound)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRequestRepository_Delete(t *testing.T) {
	ctx := testContext(t)

	t.Run("Успешное удаление", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("DELETE FROM requests\\s+WHERE id = \\$1").
			WithArgs(int64(7)).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		repo := postgres.NewRequestRepository(mock)
		require.NoError(t, repo.Delete(ctx, 7))

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Удаление несуществующей заявки", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("DELETE FROM requests\\s+WHERE id = \\$1").
			WithArgs(int64(42)).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		repo := postgres.NewRequestRepository(mock)
		err = repo.Delete(ctx, 42)

		assert.ErrorIs(t, err, entities.ErrRequestNotFound)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRequestRepository_List(t *testing.T) {
	ctx := testContext(t)
	now := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("Заявки возвращаются в порядке создания", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("FROM requests\\s+ORDER BY id").
			WillReturnRows(
				pgxmock.NewRows(requestColumns()).
					AddRow(int64(1), "Перша", "", 50.0, 30.0, "author@example.com", nil, entities.StatusNew, now).
					AddRow(int64(2), "Друга", "", 51.0, 31.0, "author@example.com", nil, entities.StatusNew, now),
			)

		repo := postgres.NewRequestRepository(mock)
		requests, err := repo.List(ctx)

		require.NoError(t, err)
		require.Len(t, requests, 2)
		assert.Equal(t, int64(1), requests[0].ID)
		assert.Equal(t, int64(2), requests[1].ID)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}
