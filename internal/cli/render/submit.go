package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/safevoice-org/voicebridge/internal/config"
	"github.com/safevoice-org/voicebridge/internal/usecase"
)

// SubmitRenderer renders the outcome of an operation submission.
type SubmitRenderer struct {
	out   io.Writer
	chain *config.Chain
	json  bool
}

// NewSubmitRenderer creates a new submit renderer
func NewSubmitRenderer(out io.Writer, chain *config.Chain, asJSON bool) *SubmitRenderer {
	return &SubmitRenderer{out: out, chain: chain, json: asJSON}
}

// Render renders one submit result.
func (r *SubmitRenderer) Render(result *usecase.SubmitResult) error {
	if r.json {
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"transactionId": result.TransactionID,
			"hash":          result.Hash,
			"optimistic":    result.Optimistic,
		})
	}

	fmt.Fprintf(r.out, "Queued %s\n", color.New(color.Bold).Sprint(result.TransactionID))
	fmt.Fprintf(r.out, "Hash:  %s\n", result.Hash)
	if r.chain != nil && r.chain.ExplorerURL != "" {
		fmt.Fprintf(r.out, "View:  %s/tx/%s\n", r.chain.ExplorerURL, result.Hash)
	}

	return nil
}

var _ Renderer[*usecase.SubmitResult] = (*SubmitRenderer)(nil)
