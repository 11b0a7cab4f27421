package repositories

import (
	"context"

	"helphub/internal/helphub/domain/entities"
)

// RequestRepository определяет интерфейс для работы с хранилищем заявок.
//
// Accept и Release выполняют атомарный compare-and-swap: переход выполняется
// только если заявка находится в требуемом состоянии, и возвращается признак
// того, что переход состоялся. Два конкурентных Accept по одной заявке не
// могут завершиться успешно оба.
type RequestRepository interface {
	Create(ctx context.Context, request *entities.HelpRequest) (*entities.HelpRequest, error)

	GetByID(ctx context.Context, id int64) (*entities.HelpRequest, error)

	// Accept переводит заявку New -> Accepted и назначает исполнителя.
	Accept(ctx context.Context, id int64, helperEmail string) (bool, error)

	// Release переводит заявку Accepted -> New, если actor является текущим исполнителем.
	Release(ctx context.Context, id int64, helperEmail string) (bool, error)

	Delete(ctx context.Context, id int64) error

	List(ctx context.Context) ([]*entities.HelpRequest, error)
}
