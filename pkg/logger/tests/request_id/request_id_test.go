package request_id_test

import (
	"context"
	"testing"

	"helphub/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequestIDContext(t *testing.T) {
	t.Run("stores provided request ID in context", func(t *testing.T) {
		requestID := "test-request-id-123"
		ctx := logger.NewRequestIDContext(context.Background(), requestID)

		got, ok := logger.GetRequestID(ctx)
		assert.True(t, ok)
		assert.Equal(t, requestID, got)
	})

	t.Run("generates request ID when empty string is given", func(t *testing.T) {
		ctx := logger.NewRequestIDContext(context.Background(), "")

		got, ok := logger.GetRequestID(ctx)
		assert.True(t, ok)
		assert.NotEmpty(t, got)

		_, err := uuid.Parse(got)
		assert.NoError(t, err, "generated request ID should be a valid UUID")
	})
}

func TestGetRequestID(t *testing.T) {
	t.Run("returns false for context without request ID", func(t *testing.T) {
		got, ok := logger.GetRequestID(context.Background())
		assert.False(t, ok)
		assert.Empty(t, got)
	})
}

func TestGenerateRequestID(t *testing.T) {
	t.Run("generates unique identifiers", func(t *testing.T) {
		first := logger.GenerateRequestID()
		second := logger.GenerateRequestID()

		assert.NotEqual(t, first, second)

		_, err := uuid.Parse(first)
		assert.NoError(t, err)
	})
}

func TestWithRequestID(t *testing.T) {
	t.Run("adds request ID field when present in context", func(t *testing.T) {
		baseLogger, err := logger.NewLogger(logger.Development, "debug")
		require.NoError(t, err)

		ctx := logger.NewRequestIDContext(context.Background(), "test-request-id-456")

		loggerWithID := baseLogger.WithRequestID(ctx)
		assert.NotSame(t, baseLogger, loggerWithID, "WithRequestID should return a new logger when request ID exists")
	})

	t.Run("returns original logger when no request ID in context", func(t *testing.T) {
		baseLogger, err := logger.NewLogger(logger.Development, "debug")
		require.NoError(t, err)

		resultLogger := baseLogger.WithRequestID(context.Background())
		assert.Same(t, baseLogger, resultLogger, "WithRequestID should return the same logger when no request ID exists")
	})
}
