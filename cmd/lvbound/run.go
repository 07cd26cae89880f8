package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvbound/candidate"
	"github.com/katalvlaran/lvbound/config"
	"github.com/katalvlaran/lvbound/generate"
	"github.com/katalvlaran/lvbound/logging"
	"github.com/katalvlaran/lvbound/oracle"
	"github.com/katalvlaran/lvbound/structures"
)

type runFlags struct {
	configPath string
	print      bool
}

func newRunCmd() *cobra.Command {
	var rf runFlags
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Enumerate the valid instances of a structure",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(rf.configPath)
			if err != nil {
				return err
			}
			if err = applyFlags(cmd, &cfg); err != nil {
				return err
			}

			return runGeneration(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, rf.print)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&rf.configPath, "config", "c", "", "YAML run configuration")
	f.BoolVar(&rf.print, "print", false, "print every valid candidate")
	f.StringP("structure", "s", "", "structure name (see list)")
	f.IntP("size", "n", 0, "finitization bound")
	f.Int("max-candidates", 0, "stop after this many candidates (0 = unlimited)")
	f.Int("ranges", 0, "split the search into this many concurrent ranges")
	f.Int("workers", 0, "ranges explored at once (0 = all)")
	f.String("log-level", "", "debug, info, warn or error")
	f.Bool("log-json", false, "emit JSON logs")
	f.String("metrics-addr", "", "serve Prometheus metrics on host:port")
	f.String("checkpoint", "", "checkpoint file")
	f.Int("checkpoint-every", 0, "write the checkpoint every N candidates")
	f.Bool("resume", false, "start from the checkpoint file if it exists")

	return cmd
}

// applyFlags overrides cfg with every flag set on the command line and
// validates the result.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	f := cmd.Flags()
	set := func(name string, apply func()) {
		if f.Changed(name) {
			apply()
		}
	}
	set("structure", func() { cfg.Structure, _ = f.GetString("structure") })
	set("size", func() { cfg.Size, _ = f.GetInt("size") })
	set("max-candidates", func() { cfg.Search.MaxCandidates, _ = f.GetInt("max-candidates") })
	set("ranges", func() { cfg.Search.Ranges, _ = f.GetInt("ranges") })
	set("workers", func() { cfg.Search.Workers, _ = f.GetInt("workers") })
	set("log-level", func() { cfg.Log.Level, _ = f.GetString("log-level") })
	set("log-json", func() { cfg.Log.JSON, _ = f.GetBool("log-json") })
	set("metrics-addr", func() { cfg.Metrics.Addr, _ = f.GetString("metrics-addr") })
	set("checkpoint", func() { cfg.Checkpoint.Path, _ = f.GetString("checkpoint") })
	set("checkpoint-every", func() { cfg.Checkpoint.Every, _ = f.GetInt("checkpoint-every") })
	set("resume", func() { cfg.Checkpoint.Resume, _ = f.GetBool("resume") })

	return cfg.Validate()
}

func runGeneration(ctx context.Context, out, errOut io.Writer, cfg config.Config, printValid bool) error {
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	runID := uuid.NewString()
	logger := logging.New(logging.Config{Level: level, JSON: cfg.Log.JSON, Output: errOut, Service: "lvbound"}).
		With(slog.String("run_id", runID), slog.String("structure", cfg.Structure), slog.Int("size", cfg.Size))

	s, err := structures.Lookup(cfg.Structure)
	if err != nil {
		return err
	}
	space, err := s.Space(cfg.Size)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	opts := []generate.Option{
		generate.WithLogger(logger),
		generate.WithMetrics(generate.NewMetrics(reg)),
		generate.WithMaxCandidates(cfg.Search.MaxCandidates),
		generate.WithWorkers(cfg.Search.Workers),
		generate.WithListener(generate.LogListener{Logger: logger}),
	}
	if printValid {
		opts = append(opts, generate.WithListener(generate.ListenerFunc(func(c *candidate.Candidate) {
			fmt.Fprintln(out, c)
		})))
	}
	if cfg.Metrics.Addr != "" {
		shutdown, err := serveMetrics(cfg.Metrics.Addr, reg, logger)
		if err != nil {
			return err
		}
		defer shutdown()
	}

	var st generate.Stats
	if cfg.Search.Ranges > 1 {
		factory := func() (oracle.Oracle, error) { return oracle.Traced(s.Predicate), nil }
		st, err = generate.RunRanges(ctx, space, factory, generate.SplitRanges(space, cfg.Search.Ranges), opts...)
		if err != nil {
			return err
		}
	} else {
		start := cfg.Search.Start
		resumed, err := resumeVector(cfg.Checkpoint, logger)
		if err != nil {
			return err
		}
		if resumed != nil {
			start = resumed
		}
		opts = append(opts, generate.WithStart(start), generate.WithEnd(cfg.Search.End))
		if cfg.Checkpoint.Path != "" {
			every := cfg.Checkpoint.Every
			if every == 0 {
				every = math.MaxInt // only when the budget stops the run
			}
			opts = append(opts, generate.WithCheckpoint(every, generate.FileCheckpoint(cfg.Checkpoint.Path)))
		}
		st, err = generate.Run(ctx, space, oracle.Traced(s.Predicate), opts...)
		if err != nil {
			return err
		}
		if st.Exhausted {
			if err = clearCheckpoint(cfg.Checkpoint.Path, logger); err != nil {
				return err
			}
		}
	}

	fmt.Fprintf(out, "run %s: explored=%d valid=%d exhausted=%t duration=%s\n",
		runID, st.Explored, st.Valid, st.Exhausted, st.Duration.Round(time.Microsecond))
	if st.Next != nil {
		fmt.Fprintf(out, "next=%v\n", st.Next)
	}
	for i, rs := range st.Ranges {
		if rs.Next != nil {
			fmt.Fprintf(out, "range %d next=%v\n", i, rs.Next)
		}
	}

	return nil
}

// resumeVector returns the checkpointed start vector when resuming from an
// existing file, nil otherwise.
func resumeVector(cp config.CheckpointConfig, logger *slog.Logger) ([]int, error) {
	if !cp.Resume || cp.Path == "" {
		return nil, nil
	}
	v, err := generate.LoadCheckpoint(cp.Path)
	if errors.Is(err, os.ErrNotExist) {
		logger.Info("no checkpoint, starting fresh", slog.String("path", cp.Path))
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	logger.Info("resuming from checkpoint", slog.String("path", cp.Path))

	return v, nil
}

// clearCheckpoint removes the checkpoint of a finished search so a later
// resume starts over instead of replaying a stale vector.
func clearCheckpoint(path string, logger *slog.Logger) error {
	if path == "" {
		return nil
	}
	err := os.Remove(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("remove checkpoint: %w", err)
	}
	logger.Info("search exhausted, checkpoint removed", slog.String("path", path))

	return nil
}

// serveMetrics exposes reg on addr/metrics until the returned func is called.
func serveMetrics(addr string, reg *prometheus.Registry, logger *slog.Logger) (func(), error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("metrics listener: %w", err)
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server", slog.Any("error", err))
		}
	}()
	logger.Info("serving metrics", slog.String("addr", ln.Addr().String()))

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}, nil
}
