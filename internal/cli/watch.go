package cli

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/safevoice-org/voicebridge/internal/domain/models"
)

// NewWatchCmd creates the watch command
func NewWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Run the confirmation poller until interrupted",
		Long: `Start the confirmation poller and print every transaction lifecycle
event as it happens. Stops on Ctrl-C.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			onEvent := func(tx *models.QueuedTransaction) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %s\n", tx.ID, tx.Type, tx.Status)
			}
			if err := app.Bridge.Events().SubscribeTransactions(onEvent); err != nil {
				return err
			}
			defer func() {
				_ = app.Bridge.Events().UnsubscribeTransactions(onEvent)
			}()

			app.Progress.OnProgress(ctx, "watching for confirmations", true)
			app.Bridge.StartPolling(ctx)

			<-ctx.Done()
			app.Progress.OnProgress(ctx, "", false)

			return app.Bridge.Close()
		},
	}

	return cmd
}
