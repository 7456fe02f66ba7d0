package label

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/issueboard/internal/cli"
	"github.com/thenoetrevino/issueboard/internal/cli/handler"
	"github.com/thenoetrevino/issueboard/internal/cli/styles"
	"github.com/thenoetrevino/issueboard/internal/types"
)

// AttachCmd returns the label attach subcommand
func AttachCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "attach",
		Short: "Attach a label to an issue",
		Long: `Attach a label to an issue by their IDs.

Examples:
  # Attach label to issue
  issueboard label attach --issue=5 --label=2

  # JSON output
  issueboard label attach --issue=5 --label=2 --json
`,
		Args: cobra.NoArgs,
		RunE: handler.Command(handler.HandlerFunc(runAttach), parseAttachFlags),
	}

	// Required flags
	cmd.Flags().Int64("issue", 0, "Issue ID (required)")
	if err := cmd.MarkFlagRequired("issue"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}

	cmd.Flags().Int64("label", 0, "Label ID (required)")
	if err := cmd.MarkFlagRequired("label"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

// attachResult represents the label attach output
type attachResult struct {
	IssueID types.IssueID `json:"issue_id"`
	LabelID types.LabelID `json:"label_id"`
}

// GetID implements the GetID interface for quiet mode output
func (r *attachResult) GetID() int {
	return int(r.IssueID)
}

// Print implements cli.Printer
func (r *attachResult) Print(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s Label %d attached to issue #%s\n", styles.SuccessStyle.Render("✓"), r.LabelID, r.IssueID)
	return err
}

func parseAttachFlags(cmd *cobra.Command) error {
	p := handler.NewFlagParser(cmd)
	if _, err := p.ParseIssueID("issue"); err != nil {
		return err
	}
	_, err := p.ParseLabelID("label")
	return err
}

func runAttach(ctx context.Context, args *handler.Arguments) (any, error) {
	issueID := types.IssueID(args.GetInt64("issue", 0))
	labelID := types.LabelID(args.GetInt64("label", 0))

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, err
	}
	defer cli.CloseQuietly(cliInstance)

	repo, err := cliInstance.Repo()
	if err != nil {
		return nil, err
	}
	if err := repo.AddLabelToIssue(ctx, issueID, labelID); err != nil {
		return nil, err
	}
	return &attachResult{IssueID: issueID, LabelID: labelID}, nil
}
