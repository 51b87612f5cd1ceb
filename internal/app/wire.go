//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"

	"github.com/safevoice-org/voicebridge/internal/adapters/chain"
	"github.com/safevoice-org/voicebridge/internal/adapters/notify"
	"github.com/safevoice-org/voicebridge/internal/adapters/repository/queue"
	"github.com/safevoice-org/voicebridge/internal/bridge"
	"github.com/safevoice-org/voicebridge/internal/config"
	"github.com/safevoice-org/voicebridge/internal/logging"
	"github.com/safevoice-org/voicebridge/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper, sink usecase.ProgressSink) (*App, error) {
	wire.Build(
		// Configuration
		config.Provider,
		config.ProvideChainResolver,
		logging.LoggingSet,

		// Adapters
		queue.NewFileRepositoryFromConfig,
		wire.Bind(new(usecase.TransactionQueue), new(*queue.FileRepository)),
		wire.Bind(new(usecase.SnapshotStore), new(*queue.FileRepository)),
		chain.NewFactory,
		chain.NewGateway,
		wire.Bind(new(usecase.ChainGateway), new(*chain.Gateway)),
		notify.NewConsoleNotifier,
		wire.Bind(new(usecase.Notifier), new(*notify.ConsoleNotifier)),
		bridge.NewBus,
		wire.Bind(new(usecase.EventPublisher), new(*bridge.Bus)),

		// Use cases
		usecase.NewClaimRewards,
		usecase.NewBurnTokens,
		usecase.NewStakeTokens,
		usecase.NewUnstakeTokens,
		usecase.NewMintBadge,
		usecase.NewSubmitVote,
		usecase.NewPollConfirmations,
		usecase.NewReconcileBalance,
		usecase.NewBridgeStatus,
		usecase.NewListQueue,
		usecase.NewClearQueue,
		wire.Struct(new(bridge.UseCases), "*"),
		bridge.New,

		// App
		NewApp,
	)
	return nil, nil
}
