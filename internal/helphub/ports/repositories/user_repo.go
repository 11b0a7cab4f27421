// Package repositories определяет интерфейсы хранилищ сервиса HelpHub.
package repositories

import (
	"context"

	"helphub/internal/helphub/domain/entities"
)

// UserRepository определяет интерфейс для операций сохранения данных пользователей.
// Create обязан атомарно обеспечивать уникальность email без учета регистра
// и возвращать services.ErrEmailAlreadyExists при нарушении.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) (*entities.User, error)

	FindByID(ctx context.Context, id string) (*entities.User, error)

	FindByEmail(ctx context.Context, email string) (*entities.User, error)

	List(ctx context.Context) ([]*entities.User, error)
}
