package issue

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/issueboard/internal/cli"
	"github.com/thenoetrevino/issueboard/internal/cli/handler"
	"github.com/thenoetrevino/issueboard/internal/database"
	"github.com/thenoetrevino/issueboard/internal/models"
	"github.com/thenoetrevino/issueboard/internal/types"
)

// CreateCmd returns the issue create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new issue",
		Long: `Create a new issue at the bottom of a column.

Examples:
  # Create in the default column (Backlog)
  issueboard issue create --title="Fix login redirect"

  # Pick column and priority
  issueboard issue create --title="Ship v2" --column=todo --priority=high

  # Quiet mode for bash capture
  ISSUE_ID=$(issueboard issue create --title="Write docs" --quiet)
`,
		Args: cobra.NoArgs,
		RunE: handler.Command(handler.HandlerFunc(runCreate), parseCreateFlags),
	}

	// Required flags
	cmd.Flags().String("title", "", "Issue title (required)")
	if err := cmd.MarkFlagRequired("title"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}

	cmd.Flags().String("description", "", "Issue description")
	cmd.Flags().String("column", "", "Column (defaults to Backlog)")
	cmd.Flags().String("priority", "low", "Priority: low, med, high, critical")
	cmd.Flags().Int64("assignee", 0, "Assignee user ID")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func parseCreateFlags(cmd *cobra.Command) error {
	_, err := handler.NewFlagParser(cmd).ParseString("title")
	return err
}

func runCreate(ctx context.Context, args *handler.Arguments) (any, error) {
	priority, err := cli.ParsePriority(args.GetString("priority", "low"))
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

	column, err := handler.NewFlagParser(args.GetCmd()).ParseColumn("column", cliInstance.App.Config.Columns())
	if err != nil {
		return nil, err
	}

	params := database.CreateIssueParams{
		Title:       args.GetString("title", ""),
		Description: args.GetString("description", ""),
		Column:      column,
		Priority:    priority,
	}
	if column == "" {
		params.Column = defaultColumn(cliInstance.App.Config.Columns())
	}
	if id := args.GetInt64("assignee", 0); id > 0 {
		uid := types.UserID(id)
		params.AssigneeID = &uid
	}

	issue, err := repo.CreateIssue(ctx, params)
	if err != nil {
		return nil, err
	}
	slog.Info("issue created", "issue_id", issue.ID, "column", issue.Column)
	return &issueResult{Issue: *issue}, nil
}

// defaultColumn is Backlog when configured, else the first lane
func defaultColumn(lanes []models.Column) models.Column {
	for _, c := range lanes {
		if c == models.DefaultColumn {
			return c
		}
	}
	return lanes[0]
}
