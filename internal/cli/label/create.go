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
	"github.com/thenoetrevino/issueboard/internal/models"
)

// CreateCmd returns the label create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new label",
		Long: `Create a new label with a name and color.

Creating a label whose name already exists returns the existing one.

Examples:
  # Create label (human-readable output)
  issueboard label create --name="bug" --color="#FF0000"

  # JSON output for agents
  issueboard label create --name="bug" --color="#FF0000" --json

  # Quiet mode for bash capture
  LABEL_ID=$(issueboard label create --name="bug" --quiet)
`,
		Args: cobra.NoArgs,
		RunE: handler.Command(&createHandler{}, parseCreateFlags),
	}

	// Required flags
	cmd.Flags().String("name", "", "Label name (required)")
	if err := cmd.MarkFlagRequired("name"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}

	cmd.Flags().String("color", "#7D56F4", "Label color in hex format #RRGGBB")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

// createHandler implements handler.Handler for label creation
type createHandler struct{}

// Execute implements the Handler interface
func (h *createHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, err
	}
	defer cli.CloseQuietly(cliInstance)

	repo, err := cliInstance.Repo()
	if err != nil {
		return nil, err
	}

	label, err := repo.CreateLabel(ctx, args.GetString("name", ""), args.GetString("color", "#7D56F4"))
	if err != nil {
		return nil, fmt.Errorf("label creation error: %w", err)
	}
	return &labelResult{Label: *label}, nil
}

// labelResult represents one label in command output
type labelResult struct {
	models.Label
}

// GetID implements the GetID interface for quiet mode output
func (r *labelResult) GetID() int {
	return int(r.ID)
}

// Print implements cli.Printer
func (r *labelResult) Print(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s Label %s ready (ID: %d)\n",
		styles.SuccessStyle.Render("✓"), styles.RenderLabelChip(&r.Label), r.ID)
	return err
}

func parseCreateFlags(cmd *cobra.Command) error {
	p := handler.NewFlagParser(cmd)
	if _, err := p.ParseString("name"); err != nil {
		return err
	}
	_, err := p.ParseColor("color")
	return err
}
