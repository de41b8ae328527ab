// SPDX-License-Identifier: MIT

package centrality

import (
	"context"

	"go.uber.org/zap"

	"github.com/katalvlaran/epdcentrality/container"
)

// Opener resolves a source identifier to an open container.
// The default is container.Open (format by file extension).
type Opener func(ctx context.Context, source string) (container.Container, error)

// Option configures a Model.
type Option func(*options)

type options struct {
	logger         *zap.Logger
	opener         Opener
	allowNonFinite bool
}

func defaultOptions() options {
	return options{
		logger: zap.NewNop(),
		opener: container.Open,
	}
}

func gatherOptions(user ...Option) options {
	o := defaultOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// WithLogger routes ingestion diagnostics to l. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithOpener replaces the container opener, e.g. to ingest an in-memory container.
func WithOpener(fn Opener) Option {
	return func(o *options) {
		if fn != nil {
			o.opener = fn
		}
	}
}

// WithAllowNonFinite keeps NaN and ±Inf values instead of failing with ErrNonFinite.
func WithAllowNonFinite() Option {
	return func(o *options) { o.allowNonFinite = true }
}
