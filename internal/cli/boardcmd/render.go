package boardcmd

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/issueboard/internal/board"
	"github.com/thenoetrevino/issueboard/internal/cli/styles"
	"github.com/thenoetrevino/issueboard/internal/models"
	"github.com/thenoetrevino/issueboard/internal/types"
)

// RenderOptions tweaks the board layout
type RenderOptions struct {
	Columns       []models.Column        // Lanes to show; empty shows all
	Pending       map[types.IssueID]bool // Issues with a move in flight
	ShowPositions bool
}

// Render lays the snapshot's lanes out side by side
func Render(snap board.Snapshot, opts RenderOptions) string {
	lanes := opts.Columns
	if len(lanes) == 0 {
		lanes = snap.Lanes()
	}

	cols := make([]string, 0, len(lanes))
	for _, lane := range lanes {
		cols = append(cols, renderColumn(lane, snap.Column(lane), opts))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func renderColumn(lane models.Column, issues []models.Issue, opts RenderOptions) string {
	var b strings.Builder
	b.WriteString(styles.ColumnTitleStyle.Render(fmt.Sprintf("%s (%d)", lane, len(issues))))

	if len(issues) == 0 {
		b.WriteString("\n")
		b.WriteString(styles.SubtitleStyle.Render("empty"))
	}
	for _, it := range issues {
		b.WriteString("\n")
		b.WriteString(renderIssue(it, opts))
	}
	return styles.ColumnStyle.Render(b.String())
}

func renderIssue(it models.Issue, opts RenderOptions) string {
	marker := ""
	if opts.Pending[it.ID] {
		marker = " ⏳"
	}
	line := styles.SubtitleStyle.Render("#"+it.ID.String()) + " " +
		styles.ValueStyle.Render(truncate(it.Title, styles.ColumnWidth-8)) + marker

	var meta []string
	if it.Priority != "" {
		meta = append(meta, string(it.Priority))
	}
	if opts.ShowPositions {
		meta = append(meta, fmt.Sprintf("@%g", it.Position))
	}
	for _, l := range it.Labels {
		meta = append(meta, styles.RenderLabelChip(l))
	}
	if len(meta) == 0 {
		return line
	}
	return line + "\n  " + styles.SubtitleStyle.Render(strings.Join(meta, " "))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 1 || len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
