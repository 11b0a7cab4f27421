package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"helphub/internal/helphub/domain/services"
	"helphub/internal/helphub/ports/repositories"
)

// TokenRepository хранит refresh-токены в памяти.
type TokenRepository struct {
	mu     sync.RWMutex
	tokens map[string]*services.RefreshToken // ключ - значение токена
}

// NewTokenRepository создает новый экземпляр хранилища токенов в памяти.
func NewTokenRepository() repositories.TokenRepository {
	return &TokenRepository{tokens: make(map[string]*services.RefreshToken)}
}

// StoreRefreshToken сохраняет новый refresh токен.
func (r *TokenRepository) StoreRefreshToken(_ context.Context, token *services.RefreshToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *token
	if stored.ID == "" {
		stored.ID = uuid.New().String()
	}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now().UTC()
	}
	r.tokens[stored.Token] = &stored

	return nil
}

// FindByToken находит токен по его значению.
func (r *TokenRepository) FindByToken(_ context.Context, token string) (*services.RefreshToken, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.tokens[token]
	if !ok {
		return nil, services.ErrInvalidRefreshToken
	}

	result := *stored
	return &result, nil
}

// RevokeToken отзывает refresh токен.
func (r *TokenRepository) RevokeToken(_ context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.tokens[token]
	if !ok {
		return services.ErrInvalidRefreshToken
	}

	stored.IsRevoked = true
	return nil
}

// CleanupExpiredTokens удаляет просроченные и отозванные токены.
func (r *TokenRepository) CleanupExpiredTokens(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	for key, stored := range r.tokens {
		if stored.IsRevoked || stored.ExpiresAt.Before(now) {
			delete(r.tokens, key)
		}
	}

	return nil
}
