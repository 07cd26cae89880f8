package generate

import (
	"errors"
	"log/slog"
	"time"
)

var (
	// ErrNilOracle indicates Run was called without an oracle.
	ErrNilOracle = errors.New("generate: oracle is nil")

	// ErrOracleFailed indicates the oracle returned an error for a candidate.
	ErrOracleFailed = errors.New("generate: oracle failed")

	// ErrNoRanges indicates RunRanges was called with an empty range list.
	ErrNoRanges = errors.New("generate: no ranges")

	// ErrCheckpointFormat indicates a malformed checkpoint stream.
	ErrCheckpointFormat = errors.New("generate: malformed checkpoint")
)

// Stats summarizes one run.
type Stats struct {
	// Explored counts candidates handed to the oracle.
	Explored int

	// Valid counts candidates the oracle accepted.
	Valid int

	// Exhausted is true when the search ran out of candidates or hit the end
	// vector, false when the budget stopped it.
	Exhausted bool

	// Next is the first unexplored vector when the budget stopped the run,
	// nil otherwise. Passing it to WithStart resumes the run. RunRanges
	// leaves it nil and reports each range's Next in Ranges.
	Next []int

	// Ranges holds the Stats of every range of a RunRanges call, in range
	// order. It is nil for Run.
	Ranges []Stats

	// Duration is the wall time of the run.
	Duration time.Duration
}

// add merges the counters of o into s.
func (s *Stats) add(o Stats) {
	s.Explored += o.Explored
	s.Valid += o.Valid
	s.Exhausted = s.Exhausted && o.Exhausted
	if o.Duration > s.Duration {
		s.Duration = o.Duration
	}
}

// CheckpointFunc persists the vector of a candidate not yet evaluated. It is
// called with a copy.
type CheckpointFunc func(vector []int) error

// Option configures Run and RunRanges.
type Option func(*Options)

// Options holds the configurable parameters of a run.
type Options struct {
	// Start and End bound the search; nil means the first vector and no end.
	Start []int
	End   []int

	// MaxCandidates stops the run after that many candidates; 0 is unlimited.
	MaxCandidates int

	// Listeners are notified in order.
	Listeners []Listener

	// Logger receives run-level records; explorer debug output goes to the
	// same logger.
	Logger *slog.Logger

	// Metrics, if non-nil, is updated on every step.
	Metrics *Metrics

	// CheckpointEvery calls Checkpoint with the current vector every that
	// many candidates; 0 disables checkpoints.
	CheckpointEvery int
	Checkpoint      CheckpointFunc

	// Workers bounds the concurrent ranges of RunRanges; 0 runs all at once.
	Workers int
}

// DefaultOptions returns an unbounded run with no listeners, no metrics and
// a discarding logger.
func DefaultOptions() Options {
	return Options{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithStart sets the first vector of the run.
func WithStart(v []int) Option {
	return func(o *Options) { o.Start = v }
}

// WithEnd sets the exclusive end vector of the run.
func WithEnd(v []int) Option {
	return func(o *Options) { o.End = v }
}

// WithMaxCandidates caps the number of explored candidates. n <= 0 is
// unlimited.
func WithMaxCandidates(n int) Option {
	return func(o *Options) {
		if n < 0 {
			n = 0
		}
		o.MaxCandidates = n
	}
}

// WithListener appends l to the notified listeners.
func WithListener(l Listener) Option {
	return func(o *Options) {
		if l != nil {
			o.Listeners = append(o.Listeners, l)
		}
	}
}

// WithLogger installs l. A nil logger has no effect.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics updates m during the run.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) { o.Metrics = m }
}

// WithCheckpoint calls fn with the pending vector after every n evaluated
// candidates, and with Stats.Next when the budget stops the run.
func WithCheckpoint(n int, fn CheckpointFunc) Option {
	return func(o *Options) {
		if n > 0 && fn != nil {
			o.CheckpointEvery = n
			o.Checkpoint = fn
		}
	}
}

// WithWorkers bounds the number of ranges RunRanges explores at once.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			n = 0
		}
		o.Workers = n
	}
}
