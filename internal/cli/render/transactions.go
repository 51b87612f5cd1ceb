package render

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/safevoice-org/voicebridge/internal/domain/models"
)

var (
	pendingStyle   = color.New(color.FgYellow)
	submittedStyle = color.New(color.FgCyan)
	confirmedStyle = color.New(color.FgGreen)
	failedStyle    = color.New(color.FgRed)
	cancelledStyle = color.New(color.Faint)
	timestampStyle = color.New(color.Faint)
)

// TransactionsRenderer renders queued transaction lists as a table.
type TransactionsRenderer struct {
	out  io.Writer
	json bool
}

// NewTransactionsRenderer creates a new transactions renderer
func NewTransactionsRenderer(out io.Writer, asJSON bool) *TransactionsRenderer {
	return &TransactionsRenderer{out: out, json: asJSON}
}

// Render renders the transaction list.
func (r *TransactionsRenderer) Render(entries []*models.QueuedTransaction) error {
	if r.json {
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Fprintln(r.out, "No queued transactions")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.Style().Options.SeparateRows = false
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 4, Align: text.AlignRight},
	})

	t.AppendHeader(table.Row{"ID", "TYPE", "STATUS", "AMOUNT", "HASH", "CREATED"})
	for _, tx := range entries {
		amount := ""
		if !tx.Metadata.Amount.IsNil() && !tx.Metadata.Amount.IsZero() {
			amount = tx.Metadata.Amount.String()
		}
		t.AppendRow(table.Row{
			tx.ID,
			string(tx.Type),
			statusCell(tx.Status),
			amount,
			shortHash(tx.Hash),
			timestampStyle.Sprint(tx.CreatedAt.Local().Format(time.DateTime)),
		})
	}
	t.Render()

	return nil
}

func statusCell(status models.TxStatus) string {
	switch status {
	case models.StatusPending:
		return pendingStyle.Sprint(status)
	case models.StatusSubmitted:
		return submittedStyle.Sprint(status)
	case models.StatusConfirmed:
		return confirmedStyle.Sprint(status)
	case models.StatusFailed:
		return failedStyle.Sprint(status)
	case models.StatusCancelled:
		return cancelledStyle.Sprint(status)
	default:
		return string(status)
	}
}

func shortHash(hash string) string {
	if len(hash) <= 12 {
		return hash
	}
	return hash[:8] + "…" + hash[len(hash)-4:]
}
