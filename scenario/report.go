package scenario

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/intmat/matrix"
)

// WriteText renders the report in a stable, line-oriented form:
//
//	scenario smoke (run golden-run)
//	PASS add exact [Addition] code=1 status=Exact
//	    [6, 8]
//	    [10, 12]
//	1 passed, 0 failed
//
// Sparse cases print count=N instead of code/status; cases that ended in an
// error print the error instead of the output.
func (r *Report) WriteText(w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "scenario %s (run %s)\n", r.Scenario, r.RunID)
	for _, res := range r.Results {
		verdict := "PASS"
		if !res.Pass {
			verdict = "FAIL"
		}
		fmt.Fprintf(&b, "%s %s [%s] ", verdict, res.Name, res.Op)
		switch {
		case res.Error != "":
			fmt.Fprintf(&b, "error: %s\n", res.Error)
		case res.Op == matrix.OpSparse.String():
			fmt.Fprintf(&b, "count=%d\n", res.Code)
		default:
			fmt.Fprintf(&b, "code=%d status=%s\n", res.Code, res.Status)
		}
		for _, row := range res.Output {
			b.WriteString("    ")
			b.WriteString(formatRow(row))
			b.WriteByte('\n')
		}
		for _, f := range res.Failures {
			fmt.Fprintf(&b, "    ! %s\n", f)
		}
	}
	passed := r.PassedCount()
	fmt.Fprintf(&b, "%d passed, %d failed\n", passed, len(r.Results)-passed)

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteJSON writes the report as indented JSON followed by a newline.
func (r *Report) WriteJSON(w io.Writer) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)

	return err
}

func formatRow(row []int32) string {
	parts := make([]string, len(row))
	for k, v := range row {
		parts[k] = fmt.Sprint(v)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}
