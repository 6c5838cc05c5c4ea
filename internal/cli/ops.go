package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/intmat/matrix"
)

// OpInfo describes one routine for the ops command.
type OpInfo struct {
	Name       string         `json:"name"`
	Descriptor []string       `json:"descriptor"`
	Codes      map[string]int `json:"codes,omitempty"`
}

// NewOpsCommand creates the ops command.
func NewOpsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "ops",
		Short:         "List routines, their dimension descriptors and status codes",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOps(newFormatter(rootOpts, cmd.OutOrStdout(), cmd.ErrOrStderr()))
		},
	}
}

// describeOps builds the table from the matrix package itself.
func describeOps() []OpInfo {
	infos := make([]OpInfo, 0, len(matrix.Ops))
	for _, op := range matrix.Ops {
		info := OpInfo{Name: op.String(), Descriptor: op.DescriptorLayout()}
		if op != matrix.OpSparse {
			info.Codes = make(map[string]int)
			for s := matrix.StatusExact; s <= matrix.StatusIncompatibleTooSmall; s++ {
				info.Codes[s.String()] = s.Code(op)
			}
		}
		infos = append(infos, info)
	}
	return infos
}

func runOps(f *OutputFormatter) error {
	infos := describeOps()
	if f.JSON() {
		return f.Success(infos)
	}

	for _, info := range infos {
		fmt.Fprintf(f.Writer, "%s  dims=[%s]\n", info.Name, strings.Join(info.Descriptor, ", "))
		if info.Codes == nil {
			fmt.Fprintf(f.Writer, "    returns the non-zero count, %d when over the bound\n", matrix.SparseErrorCode)
			continue
		}
		for s := matrix.StatusExact; s <= matrix.StatusIncompatibleTooSmall; s++ {
			fmt.Fprintf(f.Writer, "    %-21s %d\n", s.String(), info.Codes[s.String()])
		}
	}
	return nil
}
