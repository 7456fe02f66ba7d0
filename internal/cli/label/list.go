package label

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

// ListCmd returns the label list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all labels",
		Args:  cobra.NoArgs,
		RunE:  handler.SimpleCommand(handler.HandlerFunc(runList)),
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

// listResult represents the label list output
type listResult struct {
	Labels []*models.Label `json:"labels"`
	quiet  bool
}

// Print implements cli.Printer
func (r *listResult) Print(w io.Writer) error {
	if len(r.Labels) == 0 && !r.quiet {
		_, err := fmt.Fprintln(w, "No labels found")
		return err
	}
	for _, l := range r.Labels {
		line := fmt.Sprintf("%d", l.ID)
		if !r.quiet {
			line = fmt.Sprintf("%s %s %s", styles.SubtitleStyle.Render(line), styles.RenderLabelChip(l), l.Color)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
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

	repo, err := cliInstance.Repo()
	if err != nil {
		return nil, err
	}

	labels, err := repo.GetAllLabels(ctx)
	if err != nil {
		return nil, err
	}
	if labels == nil {
		labels = []*models.Label{}
	}
	return &listResult{Labels: labels, quiet: args.GetBool("quiet")}, nil
}
