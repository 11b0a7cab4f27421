package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"helphub/internal/helphub/domain/entities"
	"helphub/internal/helphub/ports/repositories"
	"helphub/pkg/logger"
)

// RequestRepository реализует интерфейс repositories.RequestRepository для работы с Postgres.
type RequestRepository struct {
	pool PgxPoolInterface
}

// NewRequestRepository создает новый экземпляр репозитория заявок.
func NewRequestRepository(pool PgxPoolInterface) repositories.RequestRepository {
	return &RequestRepository{pool: pool}
}

// Create сохраняет новую заявку в статусе New.
func (r *RequestRepository) Create(ctx context.Context, request *entities.HelpRequest) (*entities.HelpRequest, error) {
	log := logger.Log(ctx).With(zap.String("repository", "request"), zap.String("method", "Create"))

	query := `
        INSERT INTO requests (title, description, lat, lng, author_email, status)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, title, description, lat, lng, author_email, accepted_by, status, created_at
    `

	var created entities.HelpRequest
	err := r.pool.QueryRow(ctx, query,
		request.Title,
		request.Description,
		request.Lat,
		request.Lng,
		request.AuthorEmail,
		entities.StatusNew,
	).Scan(
		&created.ID,
		&created.Title,
		&created.Description,
		&created.Lat,
		&created.Lng,
		&created.AuthorEmail,
		&created.AcceptedBy,
		&created.Status,
		&created.CreatedAt,
	)

	if err != nil {
		log.Error(ctx, "error creating request", zap.Error(err))
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	return &created, nil
}

// GetByID находит заявку по идентификатору.
func (r *RequestRepository) GetByID(ctx context.Context, id int64) (*entities.HelpRequest, error) {
	log := logger.Log(ctx).With(zap.String("repository", "request"), zap.String("method", "GetByID"))

	query := `
        SELECT id, title, description, lat, lng, author_email, accepted_by, status, created_at
        FROM requests
        WHERE id = $1
    `

	var request entities.HelpRequest
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&request.ID,
		&request.Title,
		&request.Description,
		&request.Lat,
		&request.Lng,
		&request.AuthorEmail,
		&request.AcceptedBy,
		&request.Status,
		&request.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "request not found", zap.Int64("id", id))
			return nil, entities.ErrRequestNotFound
		}
		log.Error(ctx, "error finding request", zap.Error(err))
		return nil, fmt.Errorf("error querying request: %w", err)
	}

	return &request, nil
}

// Accept атомарно переводит заявку New -> Accepted и назначает исполнителя.
// Условие по статусу входит в сам UPDATE, поэтому из двух конкурентных
// вызовов строку изменит только один.
func (r *RequestRepository) Accept(ctx context.Context, id int64, helperEmail string) (bool, error) {
	log := logger.Log(ctx).With(zap.String("repository", "request"), zap.String("method", "Accept"))

	query := `
        UPDATE requests
        SET status = $3, accepted_by = $2
        WHERE id = $1 AND status = $4
    `

	result, err := r.pool.Exec(ctx, query, id, helperEmail, entities.StatusAccepted, entities.StatusNew)
	if err != nil {
		log.Error(ctx, "error accepting request", zap.Error(err))
		return false, fmt.Errorf("error accepting request: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

// Release атомарно переводит заявку Accepted -> New, если helperEmail
// является текущим исполнителем.
func (r *RequestRepository) Release(ctx context.Context, id int64, helperEmail string) (bool, error) {
	log := logger.Log(ctx).With(zap.String("repository", "request"), zap.String("method", "Release"))

	query := `
        UPDATE requests
        SET status = $3, accepted_by = NULL
        WHERE id = $1 AND status = $4 AND accepted_by = $2
    `

	result, err := r.pool.Exec(ctx, query, id, helperEmail, entities.StatusNew, entities.StatusAccepted)
	if err != nil {
		log.Error(ctx, "error releasing request", zap.Error(err))
		return false, fmt.Errorf("error releasing request: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

// Delete удаляет заявку по идентификатору.
func (r *RequestRepository) Delete(ctx context.Context, id int64) error {
	log := logger.Log(ctx).With(zap.String("repository", "request"), zap.String("method", "Delete"))

	query := `
        DELETE FROM requests
        WHERE id = $1
    `

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		log.Error(ctx, "error deleting request", zap.Error(err))
		return fmt.Errorf("error deleting request: %w", err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "request not found for deletion", zap.Int64("id", id))
		return entities.ErrRequestNotFound
	}

	return nil
}

// List возвращает все заявки в порядке создания.
func (r *RequestRepository) List(ctx context.Context) ([]*entities.HelpRequest, error) {
	log := logger.Log(ctx).With(zap.String("repository", "request"), zap.String("method", "List"))

	query := `
        SELECT id, title, description, lat, lng, author_email, accepted_by, status, created_at
        FROM requests
        ORDER BY id
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		log.Error(ctx, "error listing requests", zap.Error(err))
		return nil, fmt.Errorf("error querying requests: %w", err)
	}
	defer rows.Close()

	var requests []*entities.HelpRequest
	for rows.Next() {
		var request entities.HelpRequest
		if err := rows.Scan(
			&request.ID,
			&request.Title,
			&request.Description,
			&request.Lat,
			&request.Lng,
			&request.AuthorEmail,
			&request.AcceptedBy,
			&request.Status,
			&request.CreatedAt,
		); err != nil {
			log.Error(ctx, "error scanning request row", zap.Error(err))
			return nil, fmt.Errorf("error scanning request row: %w", err)
		}
		requests = append(requests, &request)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating request rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating request rows: %w", err)
	}

	return requests, nil
}
