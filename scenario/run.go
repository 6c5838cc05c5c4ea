package scenario

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/katalvlaran/intmat/matrix"
)

// Runner executes scenario files.
type Runner struct {
	logger   *slog.Logger
	newRunID func() string
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the logger used for per-case diagnostics.
func WithLogger(l *slog.Logger) RunnerOption {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithRunID overrides run ID generation (used when a file has no run_id).
func WithRunID(fn func() string) RunnerOption {
	return func(r *Runner) {
		if fn != nil {
			r.newRunID = fn
		}
	}
}

// NewRunner returns a Runner that logs nowhere and stamps reports with UUIDv7
// run IDs unless configured otherwise.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		newRunID: func() string { return uuid.Must(uuid.NewV7()).String() },
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Run executes every case of f in order. Case failures (wrong code, routine
// errors) are recorded in the report, not returned. The returned error is
// non-nil only when ctx is cancelled; the partial report is still returned.
func (r *Runner) Run(ctx context.Context, f *File) (*Report, error) {
	runID := f.RunID
	if runID == "" {
		runID = r.newRunID()
	}
	rep := &Report{Scenario: f.Name, RunID: runID, Results: make([]CaseResult, 0, len(f.Cases))}
	log := r.logger.With("scenario", f.Name, "run_id", runID)
	log.Info("scenario starting", "cases", len(f.Cases))

	for i := range f.Cases {
		if err := ctx.Err(); err != nil {
			log.Warn("scenario cancelled", "completed", i, "error", err)
			return rep, err
		}
		c := &f.Cases[i]
		res := r.runCase(c)
		if res.Pass {
			log.Debug("case passed", "case", c.Name, "op", res.Op, "code", res.Code)
		} else {
			log.Info("case failed", "case", c.Name, "op", res.Op, "code", res.Code, "failures", res.Failures)
		}
		rep.Results = append(rep.Results, res)
	}
	log.Info("scenario finished", "passed", rep.PassedCount(), "failed", len(rep.Results)-rep.PassedCount())

	return rep, nil
}

// runCase allocates the operands, calls the routine and checks expectations.
func (r *Runner) runCase(c *Case) CaseResult {
	op := c.op
	if op == 0 {
		// File built in code without Validate.
		if err := c.validate(); err != nil {
			return CaseResult{Name: c.Name, Op: c.Op, Error: err.Error(), Failures: []string{"invalid case"}}
		}
		op = c.op
	}
	res := CaseResult{Name: c.Name, Op: op.String()}

	out, err := r.execute(c, op, &res)
	if err != nil {
		res.Error = err.Error()
	} else {
		res.Output = out.Data()
	}
	res.Failures = check(c.Expect, &res, err)
	res.Pass = len(res.Failures) == 0

	return res
}

// execute runs the routine and returns the output buffer.
func (r *Runner) execute(c *Case, op matrix.Op, res *CaseResult) (*matrix.Dense, error) {
	m, err := allocate(c.M)
	if err != nil {
		return nil, fmt.Errorf("operand m: %w", err)
	}
	out, err := r.outputFor(c, op, m)
	if err != nil {
		return nil, fmt.Errorf("operand out: %w", err)
	}
	var n *matrix.Dense
	if c.N != nil {
		if n, err = allocate(c.N); err != nil {
			return nil, fmt.Errorf("operand n: %w", err)
		}
	}

	d := matrix.Dims(c.Dims)
	bounds := matrix.WithBoundsCheck(true)
	var st matrix.Status
	switch op {
	case matrix.OpSparse:
		if d == nil {
			d = matrix.ShapeDims(m)
		}
		var count int
		count, err = matrix.SparseMatrix(m, out, d, bounds)
		res.Code = count
		return out, err
	case matrix.OpAddition:
		if d == nil {
			d = matrix.ShapeDims(m, n, out)
		}
		st, err = matrix.Addition(m, n, out, d, bounds)
	case matrix.OpMultiplication:
		if d == nil {
			d = matrix.ShapeDims(m, n, out)
		}
		st, err = matrix.Multiplication(m, n, out, d, bounds)
	case matrix.OpTranspose:
		if d == nil {
			d = matrix.ShapeDims(m, out)
		}
		st, err = matrix.Transpose(m, out, d, bounds)
	}
	if err != nil {
		return out, err
	}
	res.Code = st.Code(op)
	res.Status = st.String()

	return out, nil
}

// outputFor allocates the output buffer; a sparse case without one gets the
// smallest buffer that always satisfies the routine's bound.
func (r *Runner) outputFor(c *Case, op matrix.Op, m *matrix.Dense) (*matrix.Dense, error) {
	if c.Out != nil {
		return allocate(c.Out)
	}
	rows, cols := m.Shape()
	if c.Dims != nil {
		rows, cols = c.Dims[0], c.Dims[1]
	}

	return matrix.NewDense(3, max(rows, cols+1))
}

// allocate turns an Operand into a buffer.
func allocate(o *Operand) (*matrix.Dense, error) {
	if len(o.Values) > 0 {
		return matrix.Allocate(o.Rows, o.Cols, o.Values)
	}
	vals := make([]int32, o.Rows*o.Cols)
	if o.Fill != 0 {
		for k := range vals {
			vals[k] = o.Fill
		}
	}

	return matrix.Allocate(o.Rows, o.Cols, vals)
}

// check compares a result with its expectations and lists every mismatch.
func check(e *Expect, res *CaseResult, err error) []string {
	var failures []string
	if e == nil {
		if err != nil {
			failures = append(failures, "unexpected error")
		}
		return failures
	}
	if e.Error != "" {
		switch {
		case err == nil:
			failures = append(failures, fmt.Sprintf("error: want %q, got none", e.Error))
		case !strings.Contains(err.Error(), e.Error):
			failures = append(failures, fmt.Sprintf("error: want %q", e.Error))
		}
		return failures
	}
	if err != nil {
		return append(failures, "unexpected error")
	}
	if e.Code != nil && *e.Code != res.Code {
		failures = append(failures, fmt.Sprintf("code: want %d, got %d", *e.Code, res.Code))
	}
	if e.Status != "" && e.Status != res.Status {
		failures = append(failures, fmt.Sprintf("status: want %s, got %s", e.Status, res.Status))
	}
	if e.Output != nil && !equalRows(e.Output, res.Output) {
		failures = append(failures, "output mismatch")
	}

	return failures
}

func equalRows(a, b [][]int32) bool {
	return slices.EqualFunc(a, b, func(x, y []int32) bool { return slices.Equal(x, y) })
}

// PassedCount returns how many cases passed.
func (r *Report) PassedCount() int {
	n := 0
	for _, res := range r.Results {
		if res.Pass {
			n++
		}
	}

	return n
}

// Passed reports whether every case passed.
func (r *Report) Passed() bool { return r.PassedCount() == len(r.Results) }
