package scenario

import (
	"errors"

	"github.com/katalvlaran/intmat/matrix"
)

// ErrInvalidScenario wraps every structural problem found while loading.
var ErrInvalidScenario = errors.New("scenario: invalid scenario")

// File is one parsed scenario document.
type File struct {
	// Name identifies the scenario in reports (NFC-normalised).
	Name string `yaml:"name"`

	// Description is free text, not interpreted.
	Description string `yaml:"description,omitempty"`

	// RunID pins the report's run identifier. Empty means the runner
	// generates one (UUIDv7).
	RunID string `yaml:"run_id,omitempty"`

	// Cases run in file order.
	Cases []Case `yaml:"cases"`

	// Path is the file the scenario was loaded from (empty for Parse).
	Path string `yaml:"-"`
}

// Case is one routine invocation.
type Case struct {
	Name string `yaml:"name"`

	// Op is parsed with matrix.ParseOp (sparse, addition, multiplication, transpose).
	Op string `yaml:"op"`

	M   *Operand `yaml:"m"`
	N   *Operand `yaml:"n,omitempty"`
	Out *Operand `yaml:"out,omitempty"`

	// Dims overrides the descriptor derived from the operand shapes.
	Dims []int `yaml:"dims,omitempty"`

	Expect *Expect `yaml:"expect,omitempty"`

	op matrix.Op // resolved by Validate
}

// Operand describes a buffer to allocate.
type Operand struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`

	// Values is the row-major initializer (rows*cols cells). When empty the
	// buffer is filled with Fill (default 0).
	Values []int32 `yaml:"values,omitempty"`
	Fill   int32   `yaml:"fill,omitempty"`
}

// Expect lists the checks applied to a case result. Unset fields are not checked.
type Expect struct {
	// Code is the legacy status integer (count for sparse).
	Code *int `yaml:"code,omitempty"`

	// Status is the matrix.Status name (e.g. "OutputSmaller").
	Status string `yaml:"status,omitempty"`

	// Output is the full content of the output buffer after the call.
	Output [][]int32 `yaml:"output,omitempty"`

	// Error is a substring the case error must contain. When set, the case
	// must fail with an error.
	Error string `yaml:"error,omitempty"`
}

// Report is the outcome of running one File.
type Report struct {
	Scenario string       `json:"scenario"`
	RunID    string       `json:"run_id"`
	Results  []CaseResult `json:"results"`
}

// CaseResult is the outcome of one Case.
type CaseResult struct {
	Name     string    `json:"name"`
	Op       string    `json:"op"`
	Code     int       `json:"code"`
	Status   string    `json:"status,omitempty"`
	Output   [][]int32 `json:"output,omitempty"`
	Error    string    `json:"error,omitempty"`
	Pass     bool      `json:"pass"`
	Failures []string  `json:"failures,omitempty"`
}
