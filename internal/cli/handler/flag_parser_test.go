package handler

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/issueboard/internal/models"
	"github.com/thenoetrevino/issueboard/internal/types"
)

// ============================================================================
// Test Helpers
// ============================================================================

// createTestCommand creates a mock cobra.Command with no flags
func createTestCommand() *cobra.Command {
	return &cobra.Command{
		Use: "test",
		Run: func(cmd *cobra.Command, args []string) {},
	}
}

// ============================================================================
// ID Tests
// ============================================================================

func TestParseIssueID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		flagValue int64
		wantErr   bool
	}{
		{name: "valid issue ID", flagValue: 42},
		{name: "valid issue ID = 1", flagValue: 1},
		{name: "zero issue ID", flagValue: 0, wantErr: true},
		{name: "negative issue ID", flagValue: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cmd := createTestCommand()
			cmd.Flags().Int64("id", tt.flagValue, "issue id")

			result, err := NewFlagParser(cmd).ParseIssueID("id")
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "must be greater than 0")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, types.IssueID(tt.flagValue), result)
		})
	}
}

func TestParseLabelID(t *testing.T) {
	t.Parallel()

	cmd := createTestCommand()
	cmd.Flags().Int64("label", 3, "label id")
	id, err := NewFlagParser(cmd).ParseLabelID("label")
	require.NoError(t, err)
	assert.Equal(t, types.LabelID(3), id)

	_, err = NewFlagParser(cmd).ParseLabelID("missing")
	assert.Error(t, err, "undefined flag")
}

// ============================================================================
// String Tests
// ============================================================================

func TestParseString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   string
		want    string
		wantErr bool
	}{
		{name: "plain", value: "hello", want: "hello"},
		{name: "trimmed", value: "  hello ", want: "hello"},
		{name: "empty", value: "", wantErr: true},
		{name: "whitespace only", value: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cmd := createTestCommand()
			cmd.Flags().String("title", tt.value, "")

			got, err := NewFlagParser(cmd).ParseString("title")
			if tt.wantErr {
				assert.ErrorContains(t, err, "title is required")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseStringOptional(t *testing.T) {
	t.Parallel()

	cmd := createTestCommand()
	cmd.Flags().String("description", "", "")
	got, err := NewFlagParser(cmd).ParseStringOptional("description")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestParseColor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value   string
		wantErr bool
	}{
		{value: "#FF0000"},
		{value: "#abcdef"},
		{value: "FF0000", wantErr: true},
		{value: "#FFF", wantErr: true},
		{value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Parallel()

			cmd := createTestCommand()
			cmd.Flags().String("color", tt.value, "")

			got, err := NewFlagParser(cmd).ParseColor("color")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.value, got)
		})
	}
}

// ============================================================================
// Column Tests
// ============================================================================

func TestParseColumn(t *testing.T) {
	t.Parallel()

	lanes := models.DefaultColumns()
	tests := []struct {
		name    string
		value   string
		want    models.Column
		wantErr bool
	}{
		{name: "unset", value: "", want: ""},
		{name: "exact", value: "Done", want: models.ColumnDone},
		{name: "case insensitive", value: "todo", want: models.ColumnTodo},
		{name: "unknown", value: "Archive", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cmd := createTestCommand()
			cmd.Flags().String("column", tt.value, "")

			got, err := NewFlagParser(cmd).ParseColumn("column", lanes)
			if tt.wantErr {
				assert.ErrorIs(t, err, models.ErrUnknownColumn)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ============================================================================
// Output Format Tests
// ============================================================================

func TestOutputFormats(t *testing.T) {
	t.Parallel()

	cmd := createTestCommand()
	cmd.Flags().Bool("json", false, "")
	cmd.Flags().Bool("quiet", false, "")
	require.NoError(t, cmd.Flags().Set("json", "true"))

	jsonOutput, quiet, err := NewFlagParser(cmd).OutputFormats()
	require.NoError(t, err)
	assert.True(t, jsonOutput)
	assert.False(t, quiet)

	_, _, err = NewFlagParser(createTestCommand()).OutputFormats()
	assert.Error(t, err, "flags not defined")
}
