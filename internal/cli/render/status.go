package render

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"github.com/safevoice-org/voicebridge/internal/domain/models"
)

// StatusRenderer renders the derived bridge status.
type StatusRenderer struct {
	out    io.Writer
	format string // "text", "json" or "yaml"
}

// NewStatusRenderer creates a new status renderer
func NewStatusRenderer(out io.Writer, format string) *StatusRenderer {
	return &StatusRenderer{out: out, format: format}
}

// Render renders the bridge status in the configured format.
func (r *StatusRenderer) Render(status *models.BridgeStatus) error {
	switch r.format {
	case "json":
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		return enc.Encode(status)
	case "yaml":
		return yaml.NewEncoder(r.out).Encode(status)
	}

	if !status.Enabled {
		fmt.Fprintln(r.out, color.New(color.Faint).Sprint("Bridge: disabled"))
		return nil
	}

	fmt.Fprintf(r.out, "Bridge:    %s\n", color.GreenString("enabled"))
	if status.Connected {
		fmt.Fprintf(r.out, "Chain:     %s (id %d)\n", color.GreenString("connected"), status.ChainID)
	} else {
		fmt.Fprintf(r.out, "Chain:     %s (id %d)\n", color.RedString("unreachable"), status.ChainID)
	}
	if status.Address != "" {
		fmt.Fprintf(r.out, "Wallet:    %s\n", status.Address)
	} else {
		fmt.Fprintf(r.out, "Wallet:    %s\n", color.YellowString("not connected"))
	}
	fmt.Fprintf(r.out, "Pending:   %d\n", status.PendingCount)

	if status.LastSync != nil {
		p := message.NewPrinter(language.English)
		balance, _ := status.LastSync.Balance.Float64()
		fmt.Fprintf(r.out, "Balance:   %s VOICE (as of %s)\n",
			p.Sprintf("%.4f", balance),
			status.LastSync.Timestamp.Local().Format(time.DateTime))
	}

	return nil
}
