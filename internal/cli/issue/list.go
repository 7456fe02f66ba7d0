package issue

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/issueboard/internal/cli"
	"github.com/thenoetrevino/issueboard/internal/cli/handler"
	"github.com/thenoetrevino/issueboard/internal/cli/styles"
	"github.com/thenoetrevino/issueboard/internal/models"
)

// ListCmd returns the issue list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List issues in board order",
		Long: `List issues column by column, in the order the board shows them.

Examples:
  issueboard issue list
  issueboard issue list --column done --json

  # Quiet mode (one ID per line)
  issueboard issue list --quiet
`,
		Args: cobra.NoArgs,
		RunE: handler.SimpleCommand(handler.HandlerFunc(runList)),
	}

	cmd.Flags().String("column", "", "Only list this column")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

// listResult represents the issue list output
type listResult struct {
	Issues []models.Issue `json:"issues"`
	quiet  bool
}

// Print implements cli.Printer
func (r *listResult) Print(w io.Writer) error {
	if r.quiet {
		for _, it := range r.Issues {
			if _, err := fmt.Fprintln(w, it.ID); err != nil {
				return err
			}
		}
		return nil
	}
	if len(r.Issues) == 0 {
		_, err := fmt.Fprintln(w, "No issues found")
		return err
	}
	var current models.Column
	for _, it := range r.Issues {
		if it.Column != current {
			current = it.Column
			if _, err := fmt.Fprintln(w, styles.ColumnTitleStyle.Render(string(current))); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "  %s %s %s\n",
			styles.SubtitleStyle.Render("#"+it.ID.String()),
			it.Title,
			styles.SubtitleStyle.Render(fmt.Sprintf("@%g", it.Position)),
		); err != nil {
			return err
		}
	}
	return nil
}

func runList(ctx context.Context, args *handler.Arguments) (any, error) {
	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, err
	}
	defer cli.CloseQuietly(cliInstance)

	snap := cliInstance.App.MoveService.Snapshot()
	col, err := handler.NewFlagParser(args.GetCmd()).ParseColumn("column", snap.Lanes())
	if err != nil {
		return nil, err
	}

	result := &listResult{Issues: []models.Issue{}, quiet: args.GetBool("quiet")}
	if col != "" {
		result.Issues = append(result.Issues, snap.Column(col)...)
	} else {
		result.Issues = append(result.Issues, snap.Issues()...)
	}
	return result, nil
}
