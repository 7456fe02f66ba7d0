// Package seed holds the seed command, which fills an empty board with
// sample issues for trying out moves
package seed

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/issueboard/internal/cli"
	"github.com/thenoetrevino/issueboard/internal/cli/handler"
	"github.com/thenoetrevino/issueboard/internal/cli/styles"
	"github.com/thenoetrevino/issueboard/internal/database"
	"github.com/thenoetrevino/issueboard/internal/models"
	"github.com/thenoetrevino/issueboard/internal/types"
	"github.com/thenoetrevino/issueboard/internal/user"
)

var sampleTitles = []string{
	"Fix login redirect",
	"Refactor board layout",
	"Update dependencies",
	"Add drag handle",
	"Review PR #42",
	"Write release notes",
	"Investigate slow sync",
	"Polish empty states",
}

var sampleLabels = []struct{ name, color string }{
	{"bug", "#FF5555"},
	{"feature", "#50FA7B"},
	{"chore", "#8BE9FD"},
}

var samplePriorities = []models.Priority{
	models.PriorityLow, models.PriorityMed, models.PriorityHigh, models.PriorityCritical,
}

// SeedCmd returns the seed command
func SeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Fill the board with sample issues",
		Long: `Create an assignee named after you, a few labels and --count issues in every column.

Examples:
  issueboard seed
  issueboard seed --count=5 --json
`,
		Args: cobra.NoArgs,
		RunE: handler.Command(handler.HandlerFunc(runSeed), parseSeedFlags),
	}

	cmd.Flags().Int("count", 3, "Issues per column")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")

	return cmd
}

// seedResult represents the seed command output
type seedResult struct {
	Issues  map[models.Column]int `json:"issues"`
	Labels  int                   `json:"labels"`
	UserID  types.UserID          `json:"user_id"`
	OnBoard int                   `json:"on_board"`
	lanes   []models.Column
}

// Print implements cli.Printer
func (r *seedResult) Print(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%s Seeded %d labels and assignee (ID: %d)\n",
		styles.SuccessStyle.Render("✓"), r.Labels, r.UserID); err != nil {
		return err
	}
	for _, col := range r.lanes {
		if _, err := fmt.Fprintf(w, "  %-12s %d issues\n", col, r.Issues[col]); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "Board now holds %d issues\n", r.OnBoard)
	return err
}

func parseSeedFlags(cmd *cobra.Command) error {
	count, err := cmd.Flags().GetInt("count")
	if err != nil {
		return err
	}
	if count < 1 {
		return fmt.Errorf("count must be greater than 0")
	}
	return nil
}

func runSeed(ctx context.Context, args *handler.Arguments) (any, error) {
	count := args.GetInt("count", 3)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, err
	}
	defer cli.CloseQuietly(cliInstance)

	repo, err := cliInstance.Repo()
	if err != nil {
		return nil, err
	}

	assigneeUser, err := repo.CreateUser(ctx, user.DisplayName(), "")
	if err != nil {
		return nil, err
	}

	var labels []*models.Label
	for _, l := range sampleLabels {
		label, err := repo.CreateLabel(ctx, l.name, l.color)
		if err != nil {
			return nil, err
		}
		labels = append(labels, label)
	}

	lanes := cliInstance.App.Config.Columns()
	result := &seedResult{
		Issues: make(map[models.Column]int, len(lanes)),
		Labels: len(labels),
		UserID: assigneeUser.ID,
		lanes:  lanes,
	}

	n := 0
	for _, col := range lanes {
		for range count {
			issue, err := repo.CreateIssue(ctx, database.CreateIssueParams{
				Title:      sampleTitles[n%len(sampleTitles)],
				Column:     col,
				Priority:   samplePriorities[n%len(samplePriorities)],
				AssigneeID: assignee(n, assigneeUser.ID),
			})
			if err != nil {
				return nil, err
			}
			if err := repo.AddLabelToIssue(ctx, issue.ID, labels[n%len(labels)].ID); err != nil {
				return nil, err
			}
			result.Issues[col]++
			n++
		}
	}
	slog.Info("board seeded", "issues", n, "labels", len(labels))

	// Reload so the count reflects what the store now holds
	svc := cliInstance.App.MoveService
	if err := svc.Resync(ctx); err != nil {
		return nil, err
	}
	result.OnBoard = svc.Snapshot().Len()
	return result, nil
}

// assignee gives every other issue to the sample user
func assignee(n int, id types.UserID) *types.UserID {
	if n%2 == 1 {
		return nil
	}
	return &id
}
