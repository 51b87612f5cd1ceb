package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/safevoice-org/voicebridge/internal/usecase"
)

// NewReconcileCmd creates the reconcile command
func NewReconcileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Replace optimistic balance state with the on-chain balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			app.Progress.OnProgress(cmd.Context(), "reading on-chain balance", true)
			snap, err := app.Bridge.Reconcile(cmd.Context(), usecase.ReconcileBalanceParams{})
			app.Progress.OnProgress(cmd.Context(), "", false)
			if err != nil {
				return err
			}
			if snap == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing to reconcile (bridge disabled or no wallet connected)")
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Balance of %s: %s VOICE\n", snap.Address, snap.Balance.String())
			return nil
		},
	}

	return cmd
}
