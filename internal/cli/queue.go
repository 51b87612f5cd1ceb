package cli

import (
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/safevoice-org/voicebridge/internal/cli/render"
	"github.com/safevoice-org/voicebridge/internal/domain/models"
	"github.com/safevoice-org/voicebridge/internal/usecase"
)

// NewQueueCmd creates the queue command group
func NewQueueCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "queue",
		Short: "Inspect and manage the local transaction queue",
	}

	cmd.AddCommand(newQueueListCmd())
	cmd.AddCommand(newQueueClearCmd())

	return cmd
}

func newQueueListCmd() *cobra.Command {
	var (
		status string
		txType string
		open   bool
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List queued transactions",
		Example: `  # All tracked transactions
  voicebridge queue list

  # Only entries still awaiting an outcome
  voicebridge queue list --open

  # Failed claims
  voicebridge queue list --status failed --type claim`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			entries, err := app.Bridge.ListTransactions(cmd.Context(), usecase.ListQueueParams{
				Status: models.TxStatus(status),
				Type:   models.TxType(txType),
				Open:   open,
			})
			if err != nil {
				return err
			}

			renderer := render.NewTransactionsRenderer(cmd.OutOrStdout(), app.Config.JSON)
			return renderer.Render(entries)
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Filter by status (pending, submitted, confirmed, failed, cancelled)")
	cmd.Flags().StringVar(&txType, "type", "", "Filter by operation type (claim, burn, stake, unstake, mintNFT, vote)")
	cmd.Flags().BoolVar(&open, "open", false, "Show only pending and submitted entries")

	return cmd
}

func newQueueClearCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every queued transaction record",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			if !force && !app.Config.NonInteractive {
				if !confirmPrompt("Clear the entire transaction queue") {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted")
					return nil
				}
			}

			if err := app.Bridge.ClearQueue(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Queue cleared")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip the confirmation prompt")

	return cmd
}

// confirmPrompt asks the user a yes/no question and returns their choice.
func confirmPrompt(label string) bool {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}

	_, err := prompt.Run()
	return err == nil
}
