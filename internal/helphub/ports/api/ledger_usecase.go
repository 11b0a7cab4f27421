package api

import (
	"context"

	"helphub/internal/helphub/domain/entities"
)

// CreateRequestInput содержит поля новой заявки о помощи.
type CreateRequestInput struct {
	Title       string
	Description string
	Lat         float64
	Lng         float64
}

// CancelOutcome описывает исход отмены заявки.
type CancelOutcome string

// Автор удаляет заявку целиком, исполнитель возвращает ее в статус New.
const (
	OutcomeDeleted     CancelOutcome = "deleted"
	OutcomeReactivated CancelOutcome = "reactivated"
)

// ContactInfo содержит контактные данные участника заявки.
type ContactInfo struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Contacts содержит контакты обоих участников принятой заявки.
type Contacts struct {
	Author ContactInfo `json:"author"`
	Helper ContactInfo `json:"helper"`
}

// LedgerUseCase определяет основной порт для операций с журналом заявок.
// Действующее лицо (actor) передается явно как email аутентифицированного
// пользователя; операции никогда не обращаются к внешнему состоянию сессии.
type LedgerUseCase interface {
	Create(ctx context.Context, input CreateRequestInput, actor string) (*entities.HelpRequest, error)

	// Accept назначает действующее лицо исполнителем заявки в статусе New.
	Accept(ctx context.Context, id int64, actor string) error

	// Cancel удаляет заявку (автор) либо возвращает ее в статус New (исполнитель).
	Cancel(ctx context.Context, id int64, actor string) (CancelOutcome, error)

	// GetContacts возвращает контакты участников принятой заявки.
	GetContacts(ctx context.Context, id int64, actor string) (*Contacts, error)

	// ListAll возвращает снимок всех заявок для отображения на карте.
	ListAll(ctx context.Context) ([]*entities.HelpRequest, error)
}
