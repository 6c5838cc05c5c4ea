package scenario

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/intmat/matrix"
)

// Load reads, parses and validates the scenario file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	f.Path = path

	return f, nil
}

// Parse decodes a scenario document, rejecting unknown fields, then
// normalises names and validates the result.
func Parse(data []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrInvalidScenario, err)
	}
	f.normalize()
	if err := f.Validate(); err != nil {
		return nil, err
	}

	return &f, nil
}

// normalize trims names and brings them to NFC so that visually identical
// names compare equal in reports and golden files.
func (f *File) normalize() {
	f.Name = norm.NFC.String(strings.TrimSpace(f.Name))
	for i := range f.Cases {
		f.Cases[i].Name = norm.NFC.String(strings.TrimSpace(f.Cases[i].Name))
	}
}

// Validate checks the structure of every case. It resolves each case's op,
// so it must run before a File built in code is handed to a Runner.
func (f *File) Validate() error {
	if f.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidScenario)
	}
	if len(f.Cases) == 0 {
		return fmt.Errorf("%w: %s: no cases", ErrInvalidScenario, f.Name)
	}
	seen := make(map[string]bool, len(f.Cases))
	for i := range f.Cases {
		c := &f.Cases[i]
		if c.Name == "" {
			return fmt.Errorf("%w: case %d: missing name", ErrInvalidScenario, i)
		}
		if seen[c.Name] {
			return fmt.Errorf("%w: case %q: duplicate name", ErrInvalidScenario, c.Name)
		}
		seen[c.Name] = true
		if err := c.validate(); err != nil {
			return fmt.Errorf("%w: case %q: %v", ErrInvalidScenario, c.Name, err)
		}
	}

	return nil
}

// validate resolves the op and checks operand roles for it.
func (c *Case) validate() error {
	op, err := matrix.ParseOp(c.Op)
	if err != nil {
		return err
	}
	c.op = op

	if c.M == nil {
		return fmt.Errorf("operand m is required")
	}
	if err = c.M.validate("m"); err != nil {
		return err
	}
	switch op {
	case matrix.OpAddition, matrix.OpMultiplication:
		if c.N == nil {
			return fmt.Errorf("operand n is required for %s", op)
		}
		if err = c.N.validate("n"); err != nil {
			return err
		}
	default:
		if c.N != nil {
			return fmt.Errorf("operand n is not used by %s", op)
		}
	}
	if c.Out == nil && op != matrix.OpSparse {
		return fmt.Errorf("operand out is required for %s", op)
	}
	if c.Out != nil {
		if err = c.Out.validate("out"); err != nil {
			return err
		}
	}
	if c.Dims != nil {
		if err = matrix.ValidateDescriptor(op, c.Dims); err != nil {
			return err
		}
	}
	if c.Expect != nil && c.Expect.Status != "" && !knownStatus(c.Expect.Status) {
		return fmt.Errorf("unknown status %q", c.Expect.Status)
	}

	return nil
}

func (o *Operand) validate(role string) error {
	if o.Rows < 0 || o.Cols < 0 {
		return fmt.Errorf("operand %s: shape %dx%d: %w", role, o.Rows, o.Cols, matrix.ErrInvalidDimensions)
	}
	if len(o.Values) != 0 && len(o.Values) != o.Rows*o.Cols {
		return fmt.Errorf("operand %s: %d values for %dx%d: %w", role, len(o.Values), o.Rows, o.Cols, matrix.ErrBadShape)
	}

	return nil
}

func knownStatus(name string) bool {
	for s := matrix.StatusExact; s <= matrix.StatusIncompatibleTooSmall; s++ {
		if s.String() == name {
			return true
		}
	}

	return false
}
