package postgres

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"helphub/internal/helphub/ports/repositories"
)

// RepositoryFactory создает все необходимые репозитории для работы с PostgreSQL.
type RepositoryFactory struct {
	userRepo    repositories.UserRepository
	tokenRepo   repositories.TokenRepository
	requestRepo repositories.RequestRepository
}

// NewRepositoryFactory создает новую фабрику репозиториев.
func NewRepositoryFactory(pool *pgxpool.Pool) *RepositoryFactory {
	return &RepositoryFactory{
		userRepo:    NewUserRepository(pool),
		tokenRepo:   NewTokenRepository(pool),
		requestRepo: NewRequestRepository(pool),
	}
}

// UserRepository возвращает репозиторий пользователей.
func (f *RepositoryFactory) UserRepository() repositories.UserRepository {
	return f.userRepo
}

// TokenRepository возвращает репозиторий токенов.
func (f *RepositoryFactory) TokenRepository() repositories.TokenRepository {
	return f.tokenRepo
}

// RequestRepository возвращает репозиторий заявок.
func (f *RepositoryFactory) RequestRepository() repositories.RequestRepository {
	return f.requestRepo
}
