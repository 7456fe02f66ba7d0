package issue

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/issueboard/internal/cli"
	"github.com/thenoetrevino/issueboard/internal/cli/handler"
	"github.com/thenoetrevino/issueboard/internal/types"
)

// DeleteCmd returns the issue delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an issue",
		Args:  cobra.ExactArgs(1),
		RunE:  handler.SimpleCommand(handler.HandlerFunc(runDelete)),
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

// deleteResult represents the issue delete output
type deleteResult struct {
	ID      types.IssueID `json:"id"`
	Deleted bool          `json:"deleted"`
}

// GetID implements the GetID interface for quiet mode output
func (r *deleteResult) GetID() int {
	return int(r.ID)
}

// Print implements cli.Printer
func (r *deleteResult) Print(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Deleted issue #%s\n", r.ID)
	return err
}

func runDelete(ctx context.Context, args *handler.Arguments) (any, error) {
	id, err := types.ParseIssueID(args.Args[0])
	if err != nil {
		return nil, err
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, err
	}
	defer cli.CloseQuietly(cliInstance)

	repo, err := cliInstance.Repo()
	if err != nil {
		return nil, err
	}
	if err := repo.DeleteIssue(ctx, id); err != nil {
		return nil, err
	}
	slog.Info("issue deleted", "issue_id", id)
	return &deleteResult{ID: id, Deleted: true}, nil
}
