package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/intmat/scenario"
)

// ValidationResult is the JSON payload of a successful validate.
type ValidationResult struct {
	Valid     bool                `json:"valid"`
	Scenarios []ValidatedScenario `json:"scenarios"`
}

// ValidatedScenario summarises one valid file.
type ValidatedScenario struct {
	Path  string `json:"path"`
	Name  string `json:"name"`
	Cases int    `json:"cases"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <scenario.yaml>...",
		Short: "Validate scenario files without running them",
		Long: `Parse and validate scenario files: unknown fields, unknown routines,
missing operands, descriptor lengths and value counts are all reported.
No routine is called.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(newFormatter(rootOpts, cmd.OutOrStdout(), cmd.ErrOrStderr()), args)
		},
	}

	return cmd
}

func runValidate(f *OutputFormatter, paths []string) error {
	result := ValidationResult{Valid: true, Scenarios: make([]ValidatedScenario, 0, len(paths))}
	for _, path := range paths {
		file, err := scenario.Load(path)
		if err != nil {
			return loadFailure(f, err)
		}
		result.Scenarios = append(result.Scenarios, ValidatedScenario{Path: path, Name: file.Name, Cases: len(file.Cases)})
	}

	if f.JSON() {
		return f.Success(result)
	}
	for _, s := range result.Scenarios {
		fmt.Fprintf(f.Writer, "✓ %s: %s (%d cases)\n", s.Path, s.Name, s.Cases)
	}
	return nil
}
