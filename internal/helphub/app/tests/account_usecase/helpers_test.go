package accountusecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"helphub/internal/helphub/adapters/memory"
	"helphub/internal/helphub/adapters/services"
	"helphub/internal/helphub/app"
	"helphub/internal/helphub/domain/entities"
	"helphub/internal/helphub/ports/api"
	"helphub/internal/helphub/ports/repositories"
	"helphub/pkg/logger"
)

const testSecretKey = "test-secret-key"

type fixture struct {
	ctx      context.Context
	accounts api.AccountUseCase
	userRepo repositories.UserRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	testLogger, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err)
	ctx := logger.NewContext(context.Background(), testLogger)

	userRepo := memory.NewUserRepository()
	tokenRepo := memory.NewTokenRepository()
	factory := services.NewServiceFactory(testSecretKey, 15*time.Minute, 24*time.Hour, 4)

	accounts := app.NewAccountUseCase(
		userRepo,
		tokenRepo,
		factory.PasswordService(),
		factory.TokenService(),
	)

	return &fixture{
		ctx:      ctx,
		accounts: accounts,
		userRepo: userRepo,
	}
}

func validInput() api.RegistrationInput {
	return api.RegistrationInput{
		Surname:    "Шевченко",
		Name:       "Тарас",
		Patronymic: "Григорович",
		Gender:     "male",
		PhoneCode:  "+380",
		Phone:      "501234567",
		Email:      "taras@example.com",
		Password:   "password123",
	}
}

func (f *fixture) register(t *testing.T) *entities.User {
	t.Helper()

	user, err := f.accounts.Register(f.ctx, validInput())
	require.NoError(t, err)
	return user
}
