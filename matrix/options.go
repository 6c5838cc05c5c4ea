// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the routines.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Defaults reproduce the trusted-descriptor contract exactly.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultBoundsCheck leaves the descriptor trusted: operands are indexed by
	// the declared dims without comparing them to the real buffers.
	DefaultBoundsCheck = false
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; routines accept `...Option`.
type Options struct {
	boundsCheck bool // DefaultBoundsCheck
}

// WithBoundsCheck enables (or disables) the debug assertion layer. When on,
// each routine verifies that every operand really holds the rows and columns
// its descriptor pair declares, and returns ErrDescriptorOverstates before
// touching any cell if not.
func WithBoundsCheck(on bool) Option {
	return func(o *Options) { o.boundsCheck = on }
}

// defaultOptions returns the zero-configuration policy.
func defaultOptions() Options {
	return Options{boundsCheck: DefaultBoundsCheck}
}

// gatherOptions applies opts over the defaults in order; nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// BoundsCheck reports whether the assertion layer is enabled.
func (o Options) BoundsCheck() bool { return o.boundsCheck }

// NewOptions resolves opts into an Options value (useful for callers that
// want to inspect the effective policy).
func NewOptions(opts ...Option) Options { return gatherOptions(opts...) }
