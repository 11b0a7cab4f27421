package logger_test

import (
	"testing"

	"helphub/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	t.Run("creates development logger", func(t *testing.T) {
		log, err := logger.NewLogger(logger.Development, "debug")
		require.NoError(t, err)
		assert.NotNil(t, log)
	})

	t.Run("creates production logger", func(t *testing.T) {
		log, err := logger.NewLogger(logger.Production, "info")
		require.NoError(t, err)
		assert.NotNil(t, log)
	})

	t.Run("uses default level when empty", func(t *testing.T) {
		log, err := logger.NewLogger(logger.Development, "")
		require.NoError(t, err)
		assert.NotNil(t, log)
	})

	t.Run("fails on unknown level", func(t *testing.T) {
		log, err := logger.NewLogger(logger.Development, "verbose")
		assert.Error(t, err)
		assert.Nil(t, log)
		assert.Contains(t, err.Error(), "parsing log level")
	})

	t.Run("With returns a new logger instance", func(t *testing.T) {
		log, err := logger.NewLogger(logger.Development, "debug")
		require.NoError(t, err)

		derived := log.With()
		assert.NotSame(t, log, derived)
	})
}
