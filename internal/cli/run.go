package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/intmat/scenario"
)

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	var runID string

	cmd := &cobra.Command{
		Use:   "run <scenario.yaml>...",
		Short: "Run scenario files and report every case",
		Long: `Run each scenario file in order. Every case calls one routine with
bounds checking enabled and is compared with its expectations.

Exits 1 when any case fails and 2 when a file cannot be loaded.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := newFormatter(rootOpts, cmd.OutOrStdout(), cmd.ErrOrStderr())
			return runScenarios(cmd, f, args, runID)
		},
	}
	cmd.Flags().StringVar(&runID, "run-id", "", "run ID for files without run_id (default: generated UUIDv7)")

	return cmd
}

func runScenarios(cmd *cobra.Command, f *OutputFormatter, paths []string, runID string) error {
	opts := []scenario.RunnerOption{scenario.WithLogger(f.Logger())}
	if runID != "" {
		opts = append(opts, scenario.WithRunID(func() string { return runID }))
	}
	runner := scenario.NewRunner(opts...)

	reports := make([]*scenario.Report, 0, len(paths))
	failed := 0
	for _, path := range paths {
		file, err := scenario.Load(path)
		if err != nil {
			return loadFailure(f, err)
		}
		rep, err := runner.Run(cmd.Context(), file)
		if err != nil {
			_ = f.Error(ErrCodeInternal, err.Error(), nil)
			return WrapExitError(ExitCommandError, "run "+path, err)
		}
		if !rep.Passed() {
			failed++
		}
		if !f.JSON() {
			if err = rep.WriteText(f.Writer); err != nil {
				return WrapExitError(ExitCommandError, "write report", err)
			}
		}
		reports = append(reports, rep)
	}

	if f.JSON() {
		if failed > 0 {
			_ = f.Error(ErrCodeFailed, fmt.Sprintf("%d scenario(s) failed", failed), reports)
		} else if err := f.Success(reports); err != nil {
			return WrapExitError(ExitCommandError, "write report", err)
		}
	}
	if failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d scenario(s) failed", failed))
	}
	return nil
}

// loadFailure reports a Load error: invalid content exits 1, anything else 2.
func loadFailure(f *OutputFormatter, err error) error {
	if errors.Is(err, scenario.ErrInvalidScenario) {
		_ = f.Error(ErrCodeInvalid, err.Error(), nil)
		return WrapExitError(ExitFailure, "invalid scenario", err)
	}
	_ = f.Error(ErrCodeLoad, err.Error(), nil)
	return WrapExitError(ExitCommandError, "load scenario", err)
}
