package app

import (
	"log/slog"

	"github.com/safevoice-org/voicebridge/internal/adapters/chain"
	"github.com/safevoice-org/voicebridge/internal/bridge"
	"github.com/safevoice-org/voicebridge/internal/config"
	"github.com/safevoice-org/voicebridge/internal/usecase"
)

// App is the main application container
type App struct {
	// Configuration
	Config *config.RuntimeConfig

	// Bridge is the operation surface commands call into
	Bridge *bridge.Bridge

	// Chain holds cached RPC clients; closed on shutdown
	Chain *chain.Factory

	// Shared dependencies
	Progress usecase.ProgressSink
	Logger   *slog.Logger
}

// NewApp creates a new application instance
func NewApp(
	cfg *config.RuntimeConfig,
	b *bridge.Bridge,
	factory *chain.Factory,
	sink usecase.ProgressSink,
	log *slog.Logger,
) (*App, error) {
	return &App{
		Config:   cfg,
		Bridge:   b,
		Chain:    factory,
		Progress: sink,
		Logger:   log,
	}, nil
}

// Close releases every resource the app holds: the confirmation poller and
// the cached RPC connections.
func (a *App) Close() error {
	err := a.Bridge.Close()
	a.Chain.Close()
	return err
}
