package issue

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
	"github.com/thenoetrevino/issueboard/internal/types"
)

// MoveCmd returns the move command. It is registered both as
// "issueboard move" and "issueboard issue move".
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <id> <target>",
		Short: "Drop an issue onto a column or next to another issue",
		Long: `Drop an issue the way the board does at the end of a drag.

The target is either a column name (the issue goes to the bottom of it) or
the ID of another issue (the issue lands next to it). With --side=auto the
side follows the drag direction: moving down lands after the sibling,
moving up lands before it.

Examples:
  # Move issue 12 to the bottom of Done
  issueboard move 12 done

  # Put issue 12 right above issue 7
  issueboard move 12 7 --side=before

  # Agent-friendly
  issueboard move 12 in-progress --json
`,
		Args: cobra.ExactArgs(2),
		RunE: handler.Command(handler.HandlerFunc(runMove), parseMoveFlags),
	}

	cmd.Flags().String("side", "auto", "Side of the target issue: auto, before, after")
	cmd.Flags().Duration("timeout", 30*time.Second, "How long to wait for the store")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func parseMoveFlags(cmd *cobra.Command) error {
	side, _ := cmd.Flags().GetString("side")
	_, err := board.ParseSide(side)
	return err
}

// moveResult represents the move command output
type moveResult struct {
	IssueID    types.IssueID    `json:"issue_id"`
	From       models.Placement `json:"from"`
	To         models.Placement `json:"to"`
	Renumbered bool             `json:"renumbered"`
	Changed    int              `json:"changed"`
	State      string           `json:"state"`
}

// GetID implements the GetID interface for quiet mode output
func (r *moveResult) GetID() int {
	return int(r.IssueID)
}

// Print implements cli.Printer
func (r *moveResult) Print(w io.Writer) error {
	if r.State == "unchanged" {
		_, err := fmt.Fprintf(w, "Issue #%s is already there\n", r.IssueID)
		return err
	}
	if _, err := fmt.Fprintf(w, "%s Moved issue #%s: %s @%g → %s @%g\n",
		styles.SuccessStyle.Render("✓"), r.IssueID,
		r.From.Column, r.From.Position, r.To.Column, r.To.Position,
	); err != nil {
		return err
	}
	if r.Renumbered {
		_, err := fmt.Fprintf(w, "  %s was respaced (%d issues)\n", r.To.Column, r.Changed)
		return err
	}
	return nil
}

func runMove(ctx context.Context, args *handler.Arguments) (any, error) {
	id, err := types.ParseIssueID(args.Args[0])
	if err != nil {
		return nil, err
	}
	side, err := board.ParseSide(args.GetString("side", "auto"))
	if err != nil {
		return nil, err
	}
	timeout, _ := args.GetCmd().Flags().GetDuration("timeout")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, err
	}
	defer cli.CloseQuietly(cliInstance)

	svc := cliInstance.App.MoveService
	snap := svc.Snapshot()
	target, err := board.ParseDropTarget(snap.Lanes(), args.Args[1], side)
	if err != nil {
		return nil, err
	}

	m, err := svc.Drop(ctx, id, target)
	if errors.Is(err, board.ErrNoChange) {
		it, _ := snap.Get(id)
		return &moveResult{IssueID: id, From: it.Placement(), To: it.Placement(), State: "unchanged"}, nil
	}
	if err != nil {
		return nil, err
	}

	wctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := m.Wait(wctx); err != nil {
		return nil, err
	}

	res := m.Resolution
	return &moveResult{
		IssueID:    res.IssueID,
		From:       res.From,
		To:         res.To,
		Renumbered: res.Renumbered,
		Changed:    len(res.Changes),
		State:      m.State().String(),
	}, nil
}
