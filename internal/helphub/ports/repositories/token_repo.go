package repositories

import (
	"context"

	"helphub/internal/helphub/domain/services"
)

// TokenRepository определяет интерфейс для операций по управлению refresh-токенами.
type TokenRepository interface {
	StoreRefreshToken(ctx context.Context, token *services.RefreshToken) error

	FindByToken(ctx context.Context, token string) (*services.RefreshToken, error)

	RevokeToken(ctx context.Context, token string) error

	CleanupExpiredTokens(ctx context.Context) error
}
