package bcryptservice_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	adapters "helphub/internal/helphub/adapters/services"
	"helphub/internal/helphub/domain/services"
)

func TestServiceBcrypt_Hash(t *testing.T) {
	ctx := context.Background()
	svc := adapters.NewBcrypt(bcrypt.MinCost)

	t.Run("успешное хэширование", func(t *testing.T) {
		hash, err := svc.Hash(ctx, "password123")
		require.NoError(t, err)
		assert.NotEmpty(t, hash)
		assert.NotEqual(t, "password123", hash)
	})

	t.Run("пустой пароль отклоняется", func(t *testing.T) {
		_, err := svc.Hash(ctx, "")
		assert.ErrorIs(t, err, services.ErrInvalidPassword)
	})

	t.Run("короткий пароль отклоняется", func(t *testing.T) {
		_, err := svc.Hash(ctx, "1234567")
		assert.ErrorIs(t, err, services.ErrInvalidPassword)
	})

	t.Run("пароль минимальной длины принимается", func(t *testing.T) {
		hash, err := svc.Hash(ctx, "12345678")
		require.NoError(t, err)
		assert.NotEmpty(t, hash)
	})
}

func TestServiceBcrypt_Verify(t *testing.T) {
	ctx := context.Background()
	svc := adapters.NewBcrypt(bcrypt.MinCost)

	hash, err := svc.Hash(ctx, "password123")
	require.NoError(t, err)

	t.Run("правильный пароль проходит проверку", func(t *testing.T) {
		valid, err := svc.Verify(ctx, "password123", hash)
		require.NoError(t, err)
		assert.True(t, valid)
	})

	t.Run("неверный пароль не проходит проверку", func(t *testing.T) {
		valid, err := svc.Verify(ctx, "wrong-password", hash)
		require.NoError(t, err)
		assert.False(t, valid)
	})

	t.Run("пустые аргументы отклоняются", func(t *testing.T) {
		_, err := svc.Verify(ctx, "", hash)
		assert.ErrorIs(t, err, services.ErrInvalidPassword)

		_, err = svc.Verify(ctx, "password123", "")
		assert.ErrorIs(t, err, services.ErrInvalidPassword)
	})
}

func TestNewBcrypt_CostBelowMinimum(t *testing.T) {
	svc := adapters.NewBcrypt(-1)
	require.NotNil(t, svc)

	hash, err := svc.Hash(context.Background(), "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
}
