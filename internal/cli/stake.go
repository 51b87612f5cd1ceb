package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/safevoice-org/voicebridge/internal/cli/render"
	"github.com/safevoice-org/voicebridge/internal/domain/models"
	"github.com/safevoice-org/voicebridge/internal/usecase"
)

// NewStakeCmd creates the stake command
func NewStakeCmd() *cobra.Command {
	var lockPeriod time.Duration

	cmd := &cobra.Command{
		Use:   "stake <amount>",
		Short: "Stake $VOICE tokens",
		Long:  `Queue a stake of the given amount with an optional lock period.`,
		Example: `  # Stake 100 VOICE for 30 days
  voicebridge stake 100 --lock 720h`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			amount, err := models.ParseAmount(args[0])
			if err != nil {
				return err
			}

			result, err := app.Bridge.StakeTokens(cmd.Context(), usecase.StakeTokensParams{
				Amount:     amount,
				LockPeriod: uint64(lockPeriod.Seconds()),
			})
			if err != nil {
				return err
			}

			renderer := render.NewSubmitRenderer(cmd.OutOrStdout(), app.Config.Chain, app.Config.JSON)
			return renderer.Render(result)
		},
	}

	cmd.Flags().DurationVar(&lockPeriod, "lock", 0, "Lock period (e.g. 720h for 30 days)")

	return cmd
}

// NewUnstakeCmd creates the unstake command
func NewUnstakeCmd() *cobra.Command {
	var stakeID uint64

	cmd := &cobra.Command{
		Use:   "unstake",
		Short: "Unstake a previous $VOICE stake",
		Long:  `Queue an unstake of the stake identified by --stake-id, returning its full amount.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.Bridge.UnstakeTokens(cmd.Context(), usecase.UnstakeTokensParams{
				StakeID: stakeID,
			})
			if err != nil {
				return err
			}

			renderer := render.NewSubmitRenderer(cmd.OutOrStdout(), app.Config.Chain, app.Config.JSON)
			return renderer.Render(result)
		},
	}

	cmd.Flags().Uint64Var(&stakeID, "stake-id", 0, "Stake id to withdraw")

	return cmd
}
