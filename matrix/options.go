// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Dense construction.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Options fields are unexported; public APIs consume ...Option.
package matrix

// DefaultValidateNaNInf toggles strict finite-value validation on Set/Apply.
const DefaultValidateNaNInf = true

// Option mutates the internal Options during construction.
type Option func(*Options)

// Options is the resolved configuration for a Dense constructor.
type Options struct {
	validateNaNInf bool
}

// WithValidateNaNInf makes Set/Apply reject NaN and ±Inf (the default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf lets Set/Apply store NaN and ±Inf.
// Use it for raw ingestion where a later pass decides what to do with
// non-finite cells.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// NewMatrixOptions resolves opts on top of the documented defaults.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// defaultOptions mirrors the Default* constants.
func defaultOptions() Options {
	return Options{validateNaNInf: DefaultValidateNaNInf}
}

// gatherOptions applies user options left to right; later options win.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// ValidateNaNInf reports whether the finite-only policy is enabled.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }
