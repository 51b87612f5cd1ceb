package cli

import (
	"github.com/spf13/cobra"

	"github.com/safevoice-org/voicebridge/internal/cli/render"
	"github.com/safevoice-org/voicebridge/internal/domain/models"
	"github.com/safevoice-org/voicebridge/internal/usecase"
)

// NewClaimCmd creates the claim command
func NewClaimCmd() *cobra.Command {
	var recipient string

	cmd := &cobra.Command{
		Use:   "claim <amount>",
		Short: "Claim earned $VOICE rewards",
		Long: `Queue a reward claim and submit a mint of the given amount to the
recipient address. Amounts are in whole VOICE tokens.`,
		Example: `  # Claim 25 VOICE to the connected wallet
  voicebridge claim 25

  # Claim to an explicit recipient
  voicebridge claim 25 --recipient 0xabc...`,
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

			result, err := app.Bridge.ClaimRewards(cmd.Context(), usecase.ClaimRewardsParams{
				Amount:    amount,
				Recipient: recipient,
			})
			if err != nil {
				return err
			}

			renderer := render.NewSubmitRenderer(cmd.OutOrStdout(), app.Config.Chain, app.Config.JSON)
			return renderer.Render(result)
		},
	}

	cmd.Flags().StringVar(&recipient, "recipient", "", "Recipient address (defaults to the connected wallet)")

	return cmd
}
