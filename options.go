package depth

import (
	"github.com/akmonengine/depth/minkowski"
	"github.com/akmonengine/depth/sampling"
)

type options struct {
	margin     float64
	resolution int
	logger     *Logger
}

func defaultOptions() options {
	return options{
		margin:     minkowski.DefaultMargin,
		resolution: sampling.DefaultResolution,
		logger:     NoopLogger(),
	}
}

// Option configures a Query.
type Option func(*options)

// WithMargin sets the extra distance added to the separating shift of the
// penetration queries. Larger margins make the refinement more robust on
// large or badly scaled shapes, at the cost of accuracy.
//
// Zero selects minkowski.DefaultMargin. Negative values are rejected by New.
func WithMargin(margin float64) Option {
	return func(o *options) {
		o.margin = margin
	}
}

// WithResolution sets the per-face grid size of the sampled direction set:
// 6*resolution*resolution directions are scanned per query. Odd values
// include the coordinate axes exactly.
//
// Default: sampling.DefaultResolution.
func WithResolution(resolution int) Option {
	return func(o *options) {
		o.resolution = resolution
	}
}

// WithLogger sets the logger. If nil is passed, logs are discarded.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}
