package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"helphub/internal/helphub/domain/entities"
	"helphub/internal/helphub/ports/api"
	"helphub/internal/helphub/ports/repositories"
	"helphub/pkg/logger"
)

// Ошибки уровня бизнес-логики журнала заявок.
var (
	// ErrNotAvailable возвращается, когда заявка отсутствует или находится
	// не в том состоянии, которое требуется для операции.
	ErrNotAvailable = errors.New("request is not available")
	// ErrNotFound возвращается при отмене несуществующей заявки.
	ErrNotFound = errors.New("request not found")
	// ErrForbidden возвращается, когда действующее лицо не имеет нужного
	// отношения к заявке.
	ErrForbidden = errors.New("forbidden")
	// ErrOwnRequest возвращается при попытке автора принять собственную заявку.
	ErrOwnRequest = errors.New("cannot accept own request")
	// ErrUnauthorized возвращается, когда действующее лицо не задано.
	ErrUnauthorized = errors.New("unauthorized access")
)

// LedgerUseCase реализует машину состояний заявок о помощи.
type LedgerUseCase struct {
	requestRepo repositories.RequestRepository
	userRepo    repositories.UserRepository
}

// NewLedgerUseCase создает новый экземпляр LedgerUseCase.
func NewLedgerUseCase(requestRepo repositories.RequestRepository, userRepo repositories.UserRepository) *LedgerUseCase {
	return &LedgerUseCase{
		requestRepo: requestRepo,
		userRepo:    userRepo,
	}
}

// Create создает новую заявку в статусе New от имени действующего лица.
func (uc *LedgerUseCase) Create(ctx context.Context, input api.CreateRequestInput, actor string) (*entities.HelpRequest, error) {
	if actor == "" {
		return nil, ErrUnauthorized
	}

	request := entities.NewHelpRequest(input.Title, input.Description, input.Lat, input.Lng, actor)

	created, err := uc.requestRepo.Create(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	logger.Log(ctx).Info(ctx, "help request created",
		zap.Int64("requestID", created.ID),
		zap.String("author", actor))

	return created, nil
}

// Accept назначает действующее лицо исполнителем заявки.
//
// Проверка статуса и назначение выполняются одним compare-and-swap в
// хранилище, поэтому из двух конкурентных Accept успешным будет ровно один.
// Принятие собственной заявки запрещено. Отсутствие заявки и неподходящий
// статус намеренно неразличимы для вызывающего.
func (uc *LedgerUseCase) Accept(ctx context.Context, id int64, actor string) error {
	if actor == "" {
		return ErrUnauthorized
	}

	request, err := uc.requestRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, entities.ErrRequestNotFound) {
			return ErrNotAvailable
		}
		return fmt.Errorf("failed to get request: %w", err)
	}

	if request.AuthorEmail == actor {
		return ErrOwnRequest
	}

	accepted, err := uc.requestRepo.Accept(ctx, id, actor)
	if err != nil {
		return fmt.Errorf("failed to accept request: %w", err)
	}
	if !accepted {
		return ErrNotAvailable
	}

	logger.Log(ctx).Info(ctx, "help request accepted",
		zap.Int64("requestID", id),
		zap.String("helper", actor))

	return nil
}

// Cancel отменяет заявку: автор удаляет ее целиком в любом состоянии,
// текущий исполнитель возвращает ее в статус New, остальным запрещено.
func (uc *LedgerUseCase) Cancel(ctx context.Context, id int64, actor string) (api.CancelOutcome, error) {
	if actor == "" {
		return "", ErrUnauthorized
	}

	request, err := uc.requestRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, entities.ErrRequestNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to get request: %w", err)
	}

	if request.AuthorEmail == actor {
		if err := uc.requestRepo.Delete(ctx, id); err != nil {
			return "", fmt.Errorf("failed to delete request: %w", err)
		}
		logger.Log(ctx).Info(ctx, "help request deleted by author", zap.Int64("requestID", id))
		return api.OutcomeDeleted, nil
	}

	released, err := uc.requestRepo.Release(ctx, id, actor)
	if err != nil {
		return "", fmt.Errorf("failed to release request: %w", err)
	}
	if !released {
		return "", ErrForbidden
	}

	logger.Log(ctx).Info(ctx, "help request released by helper",
		zap.Int64("requestID", id),
		zap.String("helper", actor))

	return api.OutcomeReactivated, nil
}

// GetContacts возвращает контакты участников принятой заявки.
// Доступно только автору и текущему исполнителю; телефоны никогда не
// раскрываются при иных состояниях или действующих лицах. Висячая ссылка на
// удаленного участника трактуется как недоступность заявки.
func (uc *LedgerUseCase) GetContacts(ctx context.Context, id int64, actor string) (*api.Contacts, error) {
	if actor == "" {
		return nil, ErrUnauthorized
	}

	request, err := uc.requestRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, entities.ErrRequestNotFound) {
			return nil, ErrNotAvailable
		}
		return nil, fmt.Errorf("failed to get request: %w", err)
	}

	if request.Status != entities.StatusAccepted || request.AcceptedBy == nil {
		return nil, ErrNotAvailable
	}

	if !request.IsParticipant(actor) {
		return nil, ErrForbidden
	}

	author, err := uc.userRepo.FindByEmail(ctx, request.AuthorEmail)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return nil, ErrNotAvailable
		}
		return nil, fmt.Errorf("failed to resolve author: %w", err)
	}

	helper, err := uc.userRepo.FindByEmail(ctx, *request.AcceptedBy)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return nil, ErrNotAvailable
		}
		return nil, fmt.Errorf("failed to resolve helper: %w", err)
	}

	return &api.Contacts{
		Author: api.ContactInfo{Email: author.Email, Phone: author.FullPhone()},
		Helper: api.ContactInfo{Email: helper.Email, Phone: helper.FullPhone()},
	}, nil
}

// ListAll возвращает снимок всех заявок для отображения на карте.
func (uc *LedgerUseCase) ListAll(ctx context.Context) ([]*entities.HelpRequest, error) {
	requests, err := uc.requestRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}

	return requests, nil
}
