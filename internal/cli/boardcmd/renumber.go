package boardcmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/issueboard/internal/board"
	"github.com/thenoetrevino/issueboard/internal/cli"
	"github.com/thenoetrevino/issueboard/internal/cli/handler"
	"github.com/thenoetrevino/issueboard/internal/cli/styles"
	"github.com/thenoetrevino/issueboard/internal/models"
)

// RenumberCmd returns the renumber command
func RenumberCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "renumber <column>",
		Short: "Respace the positions of a column evenly",
		Long: `Give every issue of a column an evenly spaced position, keeping the order.

Moves renumber a column on their own when two neighbors get too close; this
command does it on demand.

Examples:
  issueboard renumber todo
  issueboard renumber "In Progress" --json
`,
		Args: cobra.ExactArgs(1),
		RunE: handler.SimpleCommand(handler.HandlerFunc(runRenumber)),
	}

	cmd.Flags().Duration("timeout", 30*time.Second, "How long to wait for the store")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")

	return cmd
}

// renumberResult represents the renumber command output
type renumberResult struct {
	Column    models.Column `json:"column"`
	Changed   int           `json:"changed"`
	Unchanged bool          `json:"unchanged"`
}

// Print implements cli.Printer
func (r *renumberResult) Print(w io.Writer) error {
	if r.Unchanged {
		_, err := fmt.Fprintf(w, "%s is already evenly spaced\n", r.Column)
		return err
	}
	_, err := fmt.Fprintf(w, "%s %s: %d issues respaced\n", styles.SuccessStyle.Render("✓"), r.Column, r.Changed)
	return err
}

func runRenumber(ctx context.Context, args *handler.Arguments) (any, error) {
	timeout, _ := args.GetCmd().Flags().GetDuration("timeout")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, err
	}
	defer cli.CloseQuietly(cliInstance)

	svc := cliInstance.App.MoveService
	col, err := models.ParseColumn(svc.Snapshot().Lanes(), args.Args[0])
	if err != nil {
		return nil, err
	}

	m, err := svc.Renumber(ctx, col)
	if errors.Is(err, board.ErrNoChange) {
		return &renumberResult{Column: col, Unchanged: true}, nil
	}
	if err != nil {
		return nil, err
	}

	wctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := m.Wait(wctx); err != nil {
		return nil, err
	}
	return &renumberResult{Column: col, Changed: len(m.Resolution.Changes)}, nil
}
