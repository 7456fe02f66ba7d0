// Package cmd wires the issueboard command tree
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/issueboard/internal/cli"
	"github.com/thenoetrevino/issueboard/internal/cli/boardcmd"
	"github.com/thenoetrevino/issueboard/internal/cli/issue"
	"github.com/thenoetrevino/issueboard/internal/cli/label"
	"github.com/thenoetrevino/issueboard/internal/cli/seed"
	"github.com/thenoetrevino/issueboard/internal/cli/styles"
	"github.com/thenoetrevino/issueboard/internal/config"
	"github.com/thenoetrevino/issueboard/internal/logging"
)

// NewRootCmd builds the command tree. Closing the returned io.Closer
// releases the log file opened before the first command runs.
func NewRootCmd() (*cobra.Command, io.Closer) {
	logs := &logCloser{}

	rootCmd := &cobra.Command{
		Use:   "issueboard",
		Short: "Issueboard - a kanban board for issues",
		Long: `Issueboard keeps issues in ordered columns and moves them the way the
web board's drag and drop does: the move shows up at once and is written to
the store in the background, or undone if the store refuses it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd, logs)
		},
	}

	rootCmd.PersistentFlags().String("config", "", "Config file (default $XDG_CONFIG_HOME/issueboard/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(boardcmd.BoardCmd())
	rootCmd.AddCommand(boardcmd.RenumberCmd())
	rootCmd.AddCommand(issue.MoveCmd())
	rootCmd.AddCommand(issue.IssueCmd())
	rootCmd.AddCommand(label.LabelCmd())
	rootCmd.AddCommand(seed.SeedCmd())

	return rootCmd, logs
}

// Execute runs the CLI and returns the error main turns into an exit code
func Execute() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	rootCmd, logs := NewRootCmd()
	defer func() {
		if err := logs.Close(); err != nil {
			slog.Error("failed to close log file", "error", err)
		}
	}()
	return report(rootCmd, rootCmd.ExecuteContext(ctx))
}

// report prints errors cobra raised itself (unknown flags, wrong argument
// counts); command errors were already written by the output formatter
func report(cmd *cobra.Command, err error) error {
	if err == nil {
		return nil
	}
	var exitErr *cli.ExitCodeError
	if errors.As(err, &exitErr) {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "❌ Error: %s\n", err)
	return cli.Exit(cli.ExitUsage, err)
}

// setup loads logging, config and styles, and installs the CLI loader
func setup(cmd *cobra.Command, logs *logCloser) error {
	level, err := logging.ParseLevel(flagString(cmd, "log-level"))
	if err != nil {
		return fail(cmd, cli.ExitUsage, err)
	}
	closer, err := logging.InitWithOptions(logging.Options{Level: level})
	if err != nil {
		return err
	}
	logs.closer = closer

	var cfg *config.Config
	if path := flagString(cmd, "config"); path != "" {
		cfg, err = config.LoadFrom(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fail(cmd, cli.ExitValidation, err)
	}
	styles.Init(cfg.ColorScheme)

	slog.Debug("command starting", "command", cmd.CommandPath(), "backend", cfg.Backend)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(cli.WithLoader(ctx, func(ctx context.Context) (*cli.CLI, error) {
		return cli.NewCLI(ctx, cfg)
	}))
	return nil
}

// fail reports a setup error the same way command errors are reported
func fail(cmd *cobra.Command, code int, err error) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	formatter := &cli.OutputFormatter{JSON: jsonOutput, Out: cmd.OutOrStdout(), ErrOut: cmd.ErrOrStderr()}
	_ = formatter.Error("CONFIG_ERROR", err.Error())
	return cli.Exit(code, err)
}

func flagString(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}

type logCloser struct {
	closer io.Closer
}

func (l *logCloser) Close() error {
	if l.closer == nil {
		return nil
	}
	err := l.closer.Close()
	l.closer = nil
	return err
}
