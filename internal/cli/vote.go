package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/safevoice-org/voicebridge/internal/cli/render"
	"github.com/safevoice-org/voicebridge/internal/usecase"
)

// NewVoteCmd creates the vote command
func NewVoteCmd() *cobra.Command {
	var (
		support string
		reason  string
	)

	cmd := &cobra.Command{
		Use:   "vote <proposal-id>",
		Short: "Cast a governance vote",
		Long: `Queue a governance vote on the given proposal. The vote is recorded
with a reason when --reason is set.`,
		Example: `  # Vote for proposal 7
  voicebridge vote 7 --support for

  # Vote against, with a recorded reason
  voicebridge vote 7 --support against --reason "fee change too aggressive"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			proposalID, err := parseUint(args[0], "proposal id")
			if err != nil {
				return err
			}

			supportValue, err := parseSupport(support)
			if err != nil {
				return err
			}

			result, err := app.Bridge.SubmitVote(cmd.Context(), usecase.SubmitVoteParams{
				ProposalID: proposalID,
				Support:    supportValue,
				Reason:     reason,
			})
			if err != nil {
				return err
			}

			renderer := render.NewSubmitRenderer(cmd.OutOrStdout(), app.Config.Chain, app.Config.JSON)
			return renderer.Render(result)
		},
	}

	cmd.Flags().StringVar(&support, "support", "for", "Vote direction: against, for or abstain")
	cmd.Flags().StringVar(&reason, "reason", "", "Reason to record with the vote")

	return cmd
}

// parseSupport maps the user-facing direction to the governor's vote values.
func parseSupport(s string) (uint8, error) {
	switch s {
	case "against", "0":
		return 0, nil
	case "for", "1":
		return 1, nil
	case "abstain", "2":
		return 2, nil
	default:
		return 0, fmt.Errorf("invalid vote direction: %s (valid: against, for, abstain)", s)
	}
}

func parseUint(s, what string) (uint64, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %s", what, s)
	}
	return v, nil
}
