// Package issue holds all cli commands related to issues
// e.g., issueboard issue ...
package issue

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/issueboard/internal/cli/styles"
	"github.com/thenoetrevino/issueboard/internal/models"
)

// IssueCmd returns the issue parent command
func IssueCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "issue",
		Short: "Manage issues",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(MoveCmd())

	return cmd
}

// issueResult wraps an issue for output
type issueResult struct {
	models.Issue
}

// GetID implements the GetID interface for quiet mode output
func (r *issueResult) GetID() int {
	return r.Issue.GetID()
}

// Print implements cli.Printer
func (r *issueResult) Print(w io.Writer) error {
	it := r.Issue
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(fmt.Sprintf("#%s %s", it.ID, it.Title)))
	b.WriteString("\n\n")
	field := func(name, value string) {
		b.WriteString(styles.LabelStyle.Render(name+":") + " " + styles.ValueStyle.Render(value) + "\n")
	}
	field("Column", string(it.Column))
	field("Position", fmt.Sprintf("%g", it.Position))
	if it.Priority != "" {
		field("Priority", string(it.Priority))
	}
	if it.AssigneeID != nil {
		field("Assignee", fmt.Sprintf("%d", *it.AssigneeID))
	}
	if len(it.Labels) > 0 {
		chips := make([]string, len(it.Labels))
		for i, l := range it.Labels {
			chips[i] = styles.RenderLabelChip(l)
		}
		field("Labels", strings.Join(chips, " "))
	}
	if it.Description != "" {
		b.WriteString("\n" + it.Description)
	}
	_, err := fmt.Fprintln(w, styles.RenderCard(strings.TrimRight(b.String(), "\n")))
	return err
}
