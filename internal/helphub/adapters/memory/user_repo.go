// Package memory содержит потокобезопасные реализации хранилищ в памяти.
// Они повторяют семантику реализаций на Postgres и используются в тестах
// и при локальном запуске без внешней СУБД.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"helphub/internal/helphub/domain/entities"
	"helphub/internal/helphub/domain/services"
	"helphub/internal/helphub/ports/repositories"
)

// UserRepository хранит пользователей в памяти.
type UserRepository struct {
	mu    sync.RWMutex
	users map[string]*entities.User // ключ - ID пользователя
}

// NewUserRepository создает новый экземпляр хранилища пользователей в памяти.
func NewUserRepository() repositories.UserRepository {
	return &UserRepository{users: make(map[string]*entities.User)}
}

// Create сохраняет нового пользователя, обеспечивая уникальность email без учета регистра.
func (r *UserRepository) Create(_ context.Context, user *entities.User) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lowered := strings.ToLower(user.Email)
	for _, existing := range r.users {
		if strings.ToLower(existing.Email) == lowered {
			return nil, services.ErrEmailAlreadyExists
		}
	}

	now := time.Now().UTC()
	created := *user
	created.ID = uuid.New().String()
	created.CreatedAt = now
	created.UpdatedAt = now
	r.users[created.ID] = &created

	result := created
	return &result, nil
}

// FindByID находит пользователя по идентификатору.
func (r *UserRepository) FindByID(_ context.Context, id string) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, entities.ErrUserNotFound
	}

	result := *user
	return &result, nil
}

// FindByEmail находит пользователя по email без учета регистра.
func (r *UserRepository) FindByEmail(_ context.Context, email string) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lowered := strings.ToLower(email)
	for _, user := range r.users {
		if strings.ToLower(user.Email) == lowered {
			result := *user
			return &result, nil
		}
	}

	return nil, entities.ErrUserNotFound
}

// List возвращает всех пользователей, новые первыми.
func (r *UserRepository) List(_ context.Context) ([]*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]*entities.User, 0, len(r.users))
	for _, user := range r.users {
		result := *user
		users = append(users, &result)
	}

	sort.Slice(users, func(i, j int) bool {
		if users[i].CreatedAt.Equal(users[j].CreatedAt) {
			return users[i].ID > users[j].ID
		}
		return users[i].CreatedAt.After(users[j].CreatedAt)
	})

	return users, nil
}
