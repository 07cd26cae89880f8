package generate

import (
	"context"
	"log/slog"
	"sync"

	"github.com/katalvlaran/lvbound/candidate"
)

// Listener observes a run. NotifyNewCandidate sees each valid candidate
// before the explorer advances past it; the candidate must not be retained.
// NotifyFinished is called once when the run ends without error.
type Listener interface {
	NotifyNewCandidate(c *candidate.Candidate)
	NotifyFinished(explored, valid int)
}

// ListenerFunc adapts a function to a Listener that ignores NotifyFinished.
type ListenerFunc func(c *candidate.Candidate)

// NotifyNewCandidate implements Listener.
func (f ListenerFunc) NotifyNewCandidate(c *candidate.Candidate) { f(c) }

// NotifyFinished implements Listener.
func (ListenerFunc) NotifyFinished(int, int) {}

// Collector records the vectors of valid candidates. It is safe to share
// across the ranges of RunRanges.
type Collector struct {
	mu       sync.Mutex
	vectors  [][]int
	explored int
	valid    int
	finished int
}

// NotifyNewCandidate implements Listener.
func (c *Collector) NotifyNewCandidate(cand *candidate.Candidate) {
	v := cand.Vector()
	c.mu.Lock()
	c.vectors = append(c.vectors, v)
	c.mu.Unlock()
}

// NotifyFinished implements Listener.
func (c *Collector) NotifyFinished(explored, valid int) {
	c.mu.Lock()
	c.explored += explored
	c.valid += valid
	c.finished++
	c.mu.Unlock()
}

// Vectors returns the collected vectors in notification order.
func (c *Collector) Vectors() [][]int {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([][]int, len(c.vectors))
	copy(out, c.vectors)

	return out
}

// Totals returns the summed counts of every finished run and how many runs
// finished.
func (c *Collector) Totals() (explored, valid, runs int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.explored, c.valid, c.finished
}

// LogListener writes valid candidates at debug level and the final counts at
// info level.
type LogListener struct {
	Logger *slog.Logger
}

// NotifyNewCandidate implements Listener.
func (l LogListener) NotifyNewCandidate(c *candidate.Candidate) {
	if !l.Logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	l.Logger.Debug("valid candidate",
		slog.Any("vector", c.Vector()),
		slog.String("structure", c.String()),
	)
}

// NotifyFinished implements Listener.
func (l LogListener) NotifyFinished(explored, valid int) {
	l.Logger.Info("generation finished",
		slog.Int("explored", explored),
		slog.Int("valid", valid),
	)
}
