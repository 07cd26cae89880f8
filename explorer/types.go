package explorer

import (
	"errors"
	"log/slog"
)

var (
	// ErrNilStateSpace indicates New was called without a state space.
	ErrNilStateSpace = errors.New("explorer: state space is nil")

	// ErrTraceIndex indicates an observed trace entry outside [0, Len()).
	ErrTraceIndex = errors.New("explorer: trace index out of range")
)

// Option configures an Explorer.
type Option func(*Options)

// Options holds the configurable parameters of an Explorer.
type Options struct {
	// Start is the first vector handed out; nil means all zeros.
	Start []int

	// End, if non-nil, stops the search when an advance produces exactly this
	// vector. The end vector itself is never handed out.
	End []int

	// Logger receives advance decisions at debug level; nil discards them.
	Logger *slog.Logger
}

// DefaultOptions returns Options with an all-zero start, no end vector and a
// discarding logger.
func DefaultOptions() Options {
	return Options{
		Start:  nil,
		End:    nil,
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithStartVector sets the first vector (e.g. one read from a checkpoint).
func WithStartVector(v []int) Option {
	return func(o *Options) {
		o.Start = append([]int(nil), v...)
	}
}

// WithEndVector sets the exclusive end vector of the search range.
func WithEndVector(v []int) Option {
	return func(o *Options) {
		if v != nil {
			o.End = append([]int(nil), v...)
		}
	}
}

// WithLogger installs l for debug output. A nil logger has no effect.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
