// Package generate drives an explorer against an oracle and reports what it
// finds.
//
// What:
//
//   - Run: the consumer loop. NextTestCase, Evaluate, Observe, and for valid
//     candidates notify listeners and ReportCurrentAsValid, until the search
//     is exhausted, the end vector is reached, the candidate budget is spent
//     or the context is cancelled.
//   - Listener: receives every valid candidate and the final counts.
//     Collector, LogListener and ListenerFunc are provided.
//   - Metrics: Prometheus counters for explored and valid candidates and a
//     histogram of oracle latency, registered on a caller-supplied registerer.
//   - RunRanges: one explorer per disjoint [Start, End) range, run
//     concurrently over a shared read-only state space. SplitRanges cuts a
//     space into such ranges by the value of its first slot.
//   - WriteCheckpoint / ReadCheckpoint: a binary vector file usable as the
//     start vector of a later run.
//
// Every Run opens one OpenTelemetry span named "generate.Run".
//
// Errors:
//
//   - ErrNilOracle         Run called without an oracle.
//   - ErrOracleFailed      the oracle returned an error; the run stops.
//   - ErrNoRanges          RunRanges called with no ranges.
//   - ErrCheckpointFormat  a checkpoint with a bad header or truncated body.
//   - ctx.Err()            when the context ends the run.
package generate
