package globwalk

import (
	"runtime"

	"github.com/rs/zerolog"
)

// Option configures a Matcher.
type Option func(*options)

type options struct {
	caseSensitivity CaseSensitivity
	logger          zerolog.Logger
	parallelism     int
}

func defaultOptions() options {
	return options{
		caseSensitivity: CaseSensitive,
		logger:          zerolog.Nop(),
		parallelism:     runtime.NumCPU(),
	}
}

// WithCaseSensitivity sets how names are compared. The default is
// CaseSensitive.
func WithCaseSensitivity(cs CaseSensitivity) Option {
	return func(o *options) {
		o.caseSensitivity = cs
	}
}

// WithLogger sets the logger used to trace traversals. Directory visits and
// skipped subtrees are logged at debug level, matches at trace level. The
// default logger discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithParallelism bounds the number of subtrees ExecuteParallel walks at the
// same time. Values below 1 select runtime.NumCPU().
func WithParallelism(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = runtime.NumCPU()
		}
		o.parallelism = n
	}
}
