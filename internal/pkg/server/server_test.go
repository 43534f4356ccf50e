package server

import (
	"context"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/piresc/armada/internal/pkg/logger"
	"github.com/piresc/armada/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T) *logger.ZapLogger {
	t.Helper()
	zl, err := logger.NewZapLogger(models.LoggerConfig{Level: "error"})
	require.NoError(t, err)
	return zl
}

func TestNewGracefulServer(t *testing.T) {
	tests := []struct {
		name string
		port int
	}{
		{name: "Valid server creation", port: 8080},
		{name: "Different port", port: 9090},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			gs := NewGracefulServer(e, newTestLogger(t), tt.port)
			assert.NotNil(t, gs)
		})
	}
}

func TestShutdownManager(t *testing.T) {
	t.Run("Runs steps in reverse registration order", func(t *testing.T) {
		sm := NewShutdownManager(newTestLogger(t))

		var order []string
		sm.Register("redis", func(ctx context.Context) error {
			order = append(order, "redis")
			return nil
		})
		sm.Register("consumer", func(ctx context.Context) error {
			order = append(order, "consumer")
			return nil
		})

		err := sm.Shutdown(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, []string{"consumer", "redis"}, order)
	})

	t.Run("Continues after a failing component", func(t *testing.T) {
		sm := NewShutdownManager(newTestLogger(t))

		calls := 0
		sm.Register("redis", func(ctx context.Context) error {
			calls++
			return nil
		})
		sm.Register("consumer", func(ctx context.Context) error {
			calls++
			return assert.AnError
		})

		err := sm.Shutdown(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, 2, calls)
	})
}
