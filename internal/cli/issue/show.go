package issue

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/issueboard/internal/board"
	"github.com/thenoetrevino/issueboard/internal/cli"
	"github.com/thenoetrevino/issueboard/internal/cli/handler"
	"github.com/thenoetrevino/issueboard/internal/types"
)

// ShowCmd returns the issue show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one issue",
		Args:  cobra.ExactArgs(1),
		RunE:  handler.SimpleCommand(handler.HandlerFunc(runShow)),
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runShow(ctx context.Context, args *handler.Arguments) (any, error) {
	id, err := types.ParseIssueID(args.Args[0])
	if err != nil {
		return nil, err
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, err
	}
	defer cli.CloseQuietly(cliInstance)

	it, ok := cliInstance.App.MoveService.Snapshot().Get(id)
	if !ok {
		return nil, fmt.Errorf("issue %s: %w", id, board.ErrNotFound)
	}
	return &issueResult{Issue: it}, nil
}
