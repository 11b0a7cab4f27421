package ledgerusecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"helphub/internal/helphub/adapters/memory"
	"helphub/internal/helphub/app"
	"helphub/internal/helphub/domain/entities"
	"helphub/internal/helphub/ports/api"
	"helphub/internal/helphub/ports/repositories"
	"helphub/pkg/logger"
)

const (
	authorEmail   = "author@example.com"
	helperEmail   = "helper@example.com"
	strangerEmail = "stranger@example.com"
)

type fixture struct {
	ctx         context.Context
	ledger      *app.LedgerUseCase
	requestRepo repositories.RequestRepository
	userRepo    repositories.UserRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	testLogger, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err)
	ctx := logger.NewContext(context.Background(), testLogger)

	requestRepo := memory.NewRequestRepository()
	userRepo := memory.NewUserRepository()

	return &fixture{
		ctx:         ctx,
		ledger:      app.NewLedgerUseCase(requestRepo, userRepo),
		requestRepo: requestRepo,
		userRepo:    userRepo,
	}
}

func (f *fixture) registerUser(t *testing.T, email string) {
	t.Helper()

	_, err := f.userRepo.Create(f.ctx, &entities.User{
		Surname:      "Шевченко",
		Name:         "Тарас",
		Patronymic:   "Григорович",
		Gender:       entities.GenderMale,
		PhoneCode:    "+380",
		Phone:        "501234567",
		Email:        email,
		PasswordHash: "hash",
	})
	require.NoError(t, err)
}

func (f *fixture) createRequest(t *testing.T, author string) *entities.HelpRequest {
	t.Helper()

	created, err := f.ledger.Create(f.ctx, api.CreateRequestInput{
		Title:       "Потрібна допомога",
		Description: "Продукти для літньої людини",
		Lat:         50.4501,
		Lng:         30.5234,
	}, author)
	require.NoError(t, err)

	return created
}
