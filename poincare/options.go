package poincare

import "log/slog"

const (
	// DefaultTolerance is the tangent step length below which Mean
	// considers the iteration converged.
	DefaultTolerance = 1e-13

	// DefaultMaxIterations caps the number of Mean iterations.
	DefaultMaxIterations = 256
)

// MeanOption configures a [Mean] computation.
//
// Example:
//
//	p, err := poincare.Mean(vertices,
//	    poincare.WithMaxIterations(64),
//	    poincare.WithLogger(slog.Default()),
//	)
type MeanOption func(*meanOptions)

// meanOptions holds optional configuration for Mean.
type meanOptions struct {
	tolerance     float64
	maxIterations int
	logger        *slog.Logger
}

// defaultMeanOptions returns the default Mean options.
func defaultMeanOptions() meanOptions {
	return meanOptions{
		tolerance:     DefaultTolerance,
		maxIterations: DefaultMaxIterations,
		logger:        slog.New(slog.DiscardHandler),
	}
}

// WithTolerance sets the convergence tolerance on the tangent step length.
// Non-positive values are ignored.
func WithTolerance(tol float64) MeanOption {
	return func(o *meanOptions) {
		if tol > 0 {
			o.tolerance = tol
		}
	}
}

// WithMaxIterations sets the iteration cap. Non-positive values are ignored.
func WithMaxIterations(n int) MeanOption {
	return func(o *meanOptions) {
		if n > 0 {
			o.maxIterations = n
		}
	}
}

// WithLogger routes per-iteration diagnostics to l at debug level.
// A nil logger keeps the default silent behavior.
func WithLogger(l *slog.Logger) MeanOption {
	return func(o *meanOptions) {
		if l != nil {
			o.logger = l
		}
	}
}
