package cli

import (
	"github.com/spf13/cobra"

	"github.com/safevoice-org/voicebridge/internal/cli/render"
	"github.com/safevoice-org/voicebridge/internal/domain/models"
	"github.com/safevoice-org/voicebridge/internal/usecase"
)

// NewBurnCmd creates the burn command
func NewBurnCmd() *cobra.Command {
	var sender string

	cmd := &cobra.Command{
		Use:   "burn <amount>",
		Short: "Burn $VOICE tokens",
		Long:  `Queue a burn of the given amount from the sender's balance.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			amount, err := models.ParseAmount(args[0])
			if err != nil {
				return err
			}

			result, err := app.Bridge.BurnTokens(cmd.Context(), usecase.BurnTokensParams{
				Amount: amount,
				Sender: sender,
			})
			if err != nil {
				return err
			}

			renderer := render.NewSubmitRenderer(cmd.OutOrStdout(), app.Config.Chain, app.Config.JSON)
			return renderer.Render(result)
		},
	}

	cmd.Flags().StringVar(&sender, "sender", "", "Address to burn from (defaults to the connected wallet)")

	return cmd
}
