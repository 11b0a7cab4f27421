// Package api определяет входные порты (use cases) сервиса HelpHub.
package api

import (
	"context"

	"helphub/internal/helphub/domain/entities"
	"helphub/internal/helphub/domain/services"
)

// RegistrationInput содержит поля регистрационной формы.
// Валидация полей выполняется до сохранения и накапливает все ошибки.
type RegistrationInput struct {
	Surname    string
	Name       string
	Patronymic string
	Gender     string
	PhoneCode  string
	Phone      string
	Email      string
	Password   string
}

// AccountUseCase определяет основной порт для операций с учетными записями.
type AccountUseCase interface {
	// Register создает нового пользователя. Пароль сохраняется только в виде
	// bcrypt-хэша; уникальность email обеспечивается атомарно при вставке.
	Register(ctx context.Context, input RegistrationInput) (*entities.User, error)

	// Authenticate возвращает пользователя при совпадении email и пароля.
	// Неизвестный email и неверный пароль неразличимы для вызывающего.
	Authenticate(ctx context.Context, email, password string) (*entities.User, error)

	// Login аутентифицирует пользователя и выдает пару токенов.
	Login(ctx context.Context, email, password string) (*services.TokenPair, error)

	RefreshTokens(ctx context.Context, refreshToken string) (*services.TokenPair, error)

	Logout(ctx context.Context, refreshToken string) error

	// ListUsers возвращает всех пользователей, сначала самые новые.
	// Только для внутреннего использования.
	ListUsers(ctx context.Context) ([]*entities.User, error)

	GetProfile(ctx context.Context, userID string) (*entities.User, error)
}
