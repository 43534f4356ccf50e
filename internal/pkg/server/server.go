package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/armada/internal/pkg/logger"
)

const shutdownTimeout = 30 * time.Second

// GracefulServer runs an Echo server and drains it on SIGINT/SIGTERM.
type GracefulServer struct {
	echo   *echo.Echo
	logger *logger.ZapLogger
	port   int
}

func NewGracefulServer(e *echo.Echo, zapLogger *logger.ZapLogger, port int) *GracefulServer {
	return &GracefulServer{
		echo:   e,
		logger: zapLogger,
		port:   port,
	}
}

// Start serves until an interrupt or termination signal arrives, then
// drains in-flight requests. It blocks for the lifetime of the process.
func (s *GracefulServer) Start() error {
	go func() {
		addr := fmt.Sprintf(":%d", s.port)
		s.logger.Info("Starting HTTP server", logger.String("address", addr))

		if err := s.echo.Start(addr); err != nil && err != http.ErrServerClosed {
			s.logger.Fatal("Failed to start server", logger.Err(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	sig := <-quit
	s.logger.Info("Received shutdown signal", logger.String("signal", sig.String()))

	return s.Shutdown()
}

// Shutdown drains the listener, refusing new connections while in-flight
// requests finish within the timeout.
func (s *GracefulServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.echo.Shutdown(ctx); err != nil {
		s.logger.Error("Server forced to shutdown", logger.Err(err))
		return err
	}

	s.logger.Info("Server shutdown completed")
	return nil
}

type cleanup struct {
	name string
	fn   func(context.Context) error
}

// ShutdownManager collects component teardown functions and runs them
// after the HTTP server has drained.
type ShutdownManager struct {
	logger   *logger.ZapLogger
	cleanups []cleanup
}

func NewShutdownManager(zapLogger *logger.ZapLogger) *ShutdownManager {
	return &ShutdownManager{logger: zapLogger}
}

// Register adds a named teardown step. Steps run in reverse registration
// order, so consumers registered last close before the clients they use.
func (sm *ShutdownManager) Register(name string, fn func(context.Context) error) {
	sm.cleanups = append(sm.cleanups, cleanup{name: name, fn: fn})
}

// Shutdown runs every registered teardown step. A failing step is logged
// and does not stop the remaining ones.
func (sm *ShutdownManager) Shutdown(ctx context.Context) error {
	sm.logger.Info("Shutting down components", logger.Int("components", len(sm.cleanups)))

	for i := len(sm.cleanups) - 1; i >= 0; i-- {
		c := sm.cleanups[i]
		if err := c.fn(ctx); err != nil {
			sm.logger.Error("Component shutdown failed",
				logger.String("component", c.name),
				logger.Err(err))
		}
	}

	sm.logger.Info("All components shut down")
	return nil
}
