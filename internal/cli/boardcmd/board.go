// Package boardcmd holds the cli commands that show and maintain the board
// e.g., issueboard board, issueboard renumber
package boardcmd

import (
	"context"
	"io"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/issueboard/internal/cli"
	"github.com/thenoetrevino/issueboard/internal/cli/handler"
	"github.com/thenoetrevino/issueboard/internal/models"
	"github.com/thenoetrevino/issueboard/internal/types"
)

// BoardCmd returns the board command
func BoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Show the board",
		Long: `Show every column of the board side by side.

Examples:
  # Whole board
  issueboard board

  # Only some columns, with raw positions
  issueboard board --column todo --column "in progress" --positions

  # JSON output for agents
  issueboard board --json
`,
		Args: cobra.NoArgs,
		RunE: handler.SimpleCommand(handler.HandlerFunc(runBoard)),
	}

	cmd.Flags().StringSlice("column", nil, "Columns to show (repeatable)")
	cmd.Flags().Bool("positions", false, "Show each issue's position")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")

	return cmd
}

// columnResult is one lane of the board output
type columnResult struct {
	Name   models.Column  `json:"name"`
	Issues []models.Issue `json:"issues"`
}

// boardResult represents the board command output
type boardResult struct {
	Columns []columnResult  `json:"columns"`
	Pending []types.IssueID `json:"pending,omitempty"`

	render string
}

// Print implements cli.Printer
func (r *boardResult) Print(w io.Writer) error {
	_, err := lipgloss.Fprintln(w, r.render)
	return err
}

func runBoard(ctx context.Context, args *handler.Arguments) (any, error) {
	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, err
	}
	defer cli.CloseQuietly(cliInstance)

	snap := cliInstance.App.MoveService.Snapshot()

	var lanes []models.Column
	for _, raw := range args.GetStringSlice("column", nil) {
		col, err := models.ParseColumn(snap.Lanes(), raw)
		if err != nil {
			return nil, err
		}
		lanes = append(lanes, col)
	}
	if len(lanes) == 0 {
		lanes = snap.Lanes()
	}

	pending := make(map[types.IssueID]bool)
	result := &boardResult{}
	for _, m := range cliInstance.App.MoveService.Pending() {
		for _, ch := range m.Resolution.Changes {
			pending[ch.ID] = true
			result.Pending = append(result.Pending, ch.ID)
		}
	}
	for _, lane := range lanes {
		issues := snap.Column(lane)
		if issues == nil {
			issues = []models.Issue{}
		}
		result.Columns = append(result.Columns, columnResult{Name: lane, Issues: issues})
	}

	result.render = Render(snap, RenderOptions{
		Columns:       lanes,
		Pending:       pending,
		ShowPositions: args.GetBool("positions"),
	})
	return result, nil
}
