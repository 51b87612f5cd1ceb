package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/safevoice-org/voicebridge/internal/adapters/progress"
	"github.com/safevoice-org/voicebridge/internal/app"
	"github.com/safevoice-org/voicebridge/internal/config"
	"github.com/safevoice-org/voicebridge/internal/usecase"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// NewRootCmd creates the root command for the voicebridge CLI
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "voicebridge",
		Short: "Transaction bridge for the SafeVoice $VOICE token",
		Long: `Voicebridge queues, submits and tracks $VOICE token operations
(claims, burns, staking, badges, governance votes) against the configured chain.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			projectRoot, err := config.FindProjectRoot()
			if err != nil {
				projectRoot = "."
			}

			v := config.SetupViper(projectRoot, cmd)
			bindGlobalFlags(v, cmd)

			var sink usecase.ProgressSink = progress.NewSpinnerSink()
			if v.GetBool("non_interactive") || v.GetBool("json") {
				sink = usecase.NopProgress{}
			}

			appInstance, err := app.InitApp(v, sink)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			ctx := context.WithValue(cmd.Context(), appKey, appInstance)

			if appInstance.Config.Timeout > 0 && cmd.Name() != "watch" {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
				cmd.PostRun = func(cmd *cobra.Command, args []string) {
					cancel()
				}
			}

			cmd.SetContext(ctx)

			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a, err := getApp(cmd); err == nil {
				return a.Close()
			}
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().Bool("json", false, "Output machine-readable JSON")
	rootCmd.PersistentFlags().StringP("chain", "c", "", "Chain to use (e.g., sepolia, base, 31337)")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "operations",
		Title: "Token Operations",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "queue",
		Title: "Queue Commands",
	})

	for _, c := range []*cobra.Command{
		NewClaimCmd(),
		NewBurnCmd(),
		NewStakeCmd(),
		NewUnstakeCmd(),
		NewBadgeCmd(),
		NewVoteCmd(),
	} {
		c.GroupID = "operations"
		rootCmd.AddCommand(c)
	}

	for _, c := range []*cobra.Command{
		NewQueueCmd(),
		NewWatchCmd(),
		NewReconcileCmd(),
	} {
		c.GroupID = "queue"
		rootCmd.AddCommand(c)
	}

	rootCmd.AddCommand(NewStatusCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// bindGlobalFlags binds persistent flags to viper
func bindGlobalFlags(v *viper.Viper, cmd *cobra.Command) {
	// Only bind flags that exist and have been changed
	if f := cmd.Flag("debug"); f != nil && f.Changed {
		v.Set("debug", f.Value.String())
	}
	if f := cmd.Flag("non-interactive"); f != nil && f.Changed {
		v.Set("non_interactive", f.Value.String())
	}
	if f := cmd.Flag("json"); f != nil && f.Changed {
		v.Set("json", f.Value.String())
	}
	if f := cmd.Flag("chain"); f != nil && f.Changed {
		v.Set("chain", f.Value.String())
	}
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	a, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return a, nil
}
