package cli

import (
	"github.com/spf13/cobra"

	"github.com/safevoice-org/voicebridge/internal/cli/render"
	"github.com/safevoice-org/voicebridge/internal/usecase"
)

// NewBadgeCmd creates the badge command group
func NewBadgeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "badge",
		Short: "Achievement badge commands",
	}

	cmd.AddCommand(newBadgeMintCmd())

	return cmd
}

func newBadgeMintCmd() *cobra.Command {
	var recipient string

	cmd := &cobra.Command{
		Use:   "mint <token-id>",
		Short: "Mint an achievement badge NFT",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			tokenID, err := parseUint(args[0], "token id")
			if err != nil {
				return err
			}

			result, err := app.Bridge.MintBadge(cmd.Context(), usecase.MintBadgeParams{
				TokenID:   tokenID,
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
