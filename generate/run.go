package generate

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/lvbound/explorer"
	"github.com/katalvlaran/lvbound/oracle"
	"github.com/katalvlaran/lvbound/statespace"
)

const tracerName = "github.com/katalvlaran/lvbound/generate"

// Run explores space with o until the search ends and returns the counts.
//
// Steps per candidate:
//  1. NextTestCase; stop when the explorer is done.
//  2. Evaluate; an oracle error aborts the run with ErrOracleFailed.
//  3. Observe the verdict's trace.
//  4. On a valid verdict notify listeners, then ReportCurrentAsValid.
//
// Context cancellation is checked before every candidate and returns
// ctx.Err() with the counts so far.
func Run(ctx context.Context, space *statespace.StateSpace, o oracle.Oracle, opts ...Option) (Stats, error) {
	opt := DefaultOptions()
	for _, fn := range opts {
		fn(&opt)
	}

	return run(ctx, space, o, opt)
}

func run(ctx context.Context, space *statespace.StateSpace, o oracle.Oracle, opt Options) (stats Stats, err error) {
	if o == nil {
		return Stats{}, ErrNilOracle
	}
	ex, err := explorer.New(space,
		explorer.WithStartVector(opt.Start),
		explorer.WithEndVector(opt.End),
		explorer.WithLogger(opt.Logger),
	)
	if err != nil {
		return Stats{}, err
	}

	ctx, span := otel.Tracer(tracerName).Start(ctx, "generate.Run",
		trace.WithAttributes(
			attribute.String("lvbound.root_class", space.RootClass()),
			attribute.Int("lvbound.slots", space.Len()),
			attribute.Int("lvbound.max_candidates", opt.MaxCandidates),
		),
	)
	defer span.End()

	began := time.Now()
	logger := opt.Logger
	logger.Info("generation started",
		slog.String("root_class", space.RootClass()),
		slog.Int("slots", space.Len()),
	)
	defer func() {
		stats.Duration = time.Since(began)
		span.SetAttributes(
			attribute.Int("lvbound.explored", stats.Explored),
			attribute.Int("lvbound.valid", stats.Valid),
		)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "generation failed")
			logger.Warn("generation stopped",
				slog.Int("explored", stats.Explored),
				slog.Int("valid", stats.Valid),
				slog.Any("error", err),
			)
			return
		}
		span.SetStatus(codes.Ok, "")
		for _, l := range opt.Listeners {
			l.NotifyFinished(stats.Explored, stats.Valid)
		}
	}()

	for {
		if err = ctx.Err(); err != nil {
			return stats, err
		}
		c, ok := ex.NextTestCase()
		if !ok {
			stats.Exhausted = true
			return stats, nil
		}
		if opt.MaxCandidates > 0 && stats.Explored == opt.MaxCandidates {
			stats.Next = c.Vector()
			logger.Info("candidate budget spent", slog.Int("max_candidates", opt.MaxCandidates))
			if opt.Checkpoint != nil {
				if err = opt.Checkpoint(stats.Next); err != nil {
					return stats, fmt.Errorf("checkpoint: %w", err)
				}
			}
			return stats, nil
		}
		if opt.Checkpoint != nil && stats.Explored > 0 && stats.Explored%opt.CheckpointEvery == 0 {
			if err = opt.Checkpoint(c.Vector()); err != nil {
				return stats, fmt.Errorf("checkpoint: %w", err)
			}
		}
		stats.Explored++

		t0 := time.Now()
		verdict, evalErr := o.Evaluate(ctx, c)
		if opt.Metrics != nil {
			opt.Metrics.OracleDuration.Observe(time.Since(t0).Seconds())
			opt.Metrics.Explored.Inc()
		}
		if evalErr != nil {
			if err = ctx.Err(); err != nil {
				return stats, err
			}
			return stats, fmt.Errorf("%w: candidate %v: %w", ErrOracleFailed, c.Vector(), evalErr)
		}
		if err = ex.Observe(verdict.Trace); err != nil {
			return stats, fmt.Errorf("%w: %w", ErrOracleFailed, err)
		}
		if !verdict.Valid {
			continue
		}

		stats.Valid++
		if opt.Metrics != nil {
			opt.Metrics.Valid.Inc()
		}
		for _, l := range opt.Listeners {
			l.NotifyNewCandidate(c)
		}
		ex.ReportCurrentAsValid()
	}
}
