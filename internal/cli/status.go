package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/safevoice-org/voicebridge/internal/cli/render"
)

// NewStatusCmd creates the status command
func NewStatusCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show bridge configuration, connectivity and queue depth",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			status, err := app.Bridge.Status(cmd.Context())
			if err != nil {
				return err
			}

			format := output
			if app.Config.JSON {
				format = "json"
			}
			switch format {
			case "text", "json", "yaml":
			default:
				return fmt.Errorf("invalid output format: %s (valid: text, json, yaml)", output)
			}

			renderer := render.NewStatusRenderer(cmd.OutOrStdout(), format)
			return renderer.Render(status)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format (text, json, yaml)")

	return cmd
}
