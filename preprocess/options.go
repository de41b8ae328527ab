// SPDX-License-Identifier: MIT

package preprocess

import "go.uber.org/zap"

// Option configures Convert.
type Option func(*options)

type options struct {
	simulated bool
	logger    *zap.Logger
}

func gatherOptions(user ...Option) options {
	o := options{logger: zap.NewNop()}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// WithSimulated requires the impact-parameter column b.
// Without it, b is converted when present and skipped otherwise.
func WithSimulated() Option {
	return func(o *options) { o.simulated = true }
}

// WithLogger routes progress messages to l. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
