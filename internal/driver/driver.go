package driver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"golang.org/x/time/rate"

	"github.com/yndnr/chainmap/internal/telemetry/logger"
	"github.com/yndnr/chainmap/internal/telemetry/metric"
	"github.com/yndnr/chainmap/pkg/chainmap"
)

// Result summarizes a driver run.
type Result struct {
	RunID      string
	Iterations int
	Elapsed    time.Duration
	// LastLen is the size of the map built by the final iteration.
	LastLen int
}

// Run executes cfg.Driver.Repeat iterations. reg may be nil.
//
// A canceled context stops the loop between iterations; the partial Result is
// returned together with an error wrapping ctx.Err().
func Run(ctx context.Context, cfg *Config, log logger.Logger, reg *metric.Registry) (Result, error) {
	if err := Verify(cfg); err != nil {
		return Result{}, fmt.Errorf("invalid config: %w", err)
	}
	if log == nil {
		log = logger.Default()
	}

	res := Result{RunID: ulid.Make().String()}
	ctx = logger.WithRunID(logger.WithLogger(ctx, log), res.RunID)
	log = logger.L(ctx)

	var limiter *rate.Limiter
	if cfg.Driver.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.Driver.RateLimit), 1)
	}

	log.Info("driver started",
		"repeat", cfg.Driver.Repeat,
		"capacity", cfg.Driver.Capacity,
		"rate_limit", cfg.Driver.RateLimit)

	var (
		last   *chainmap.Map[int, string]
		runErr error
	)
	start := time.Now()
	for i := 0; i < cfg.Driver.Repeat; i++ {
		if err := ctx.Err(); err != nil {
			runErr = fmt.Errorf("interrupted after %d iterations: %w", i, err)
			break
		}
		if limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				runErr = fmt.Errorf("interrupted after %d iterations: %w", i, err)
				break
			}
		}

		iterStart := time.Now()
		m, err := iterate(&cfg.Driver)
		if err != nil {
			runErr = err
			break
		}
		if reg != nil {
			reg.ObserveIteration(time.Since(iterStart).Seconds())
			reg.IncIteration()
		}

		last = m
		res.Iterations++
	}
	res.Elapsed = time.Since(start)
	if last != nil {
		res.LastLen = last.Len()
	}

	if reg != nil {
		if err := report(reg, cfg, last, runErr); err != nil {
			log.Warn("metrics output failed", "error", err)
		}
	}

	if runErr != nil {
		log.Warn("driver stopped",
			"iterations", res.Iterations,
			"elapsed", res.Elapsed,
			"error", runErr)
		return res, runErr
	}

	log.Info("driver finished",
		"iterations", res.Iterations,
		"elapsed", res.Elapsed,
		"last_len", res.LastLen)
	return res, nil
}

// iterate constructs one map and assigns through At.
func iterate(cfg *DriverSection) (*chainmap.Map[int, string], error) {
	m, err := chainmap.New[int, string](chainmap.WithCapacity(cfg.Capacity))
	if err != nil {
		return nil, fmt.Errorf("construct map: %w", err)
	}
	*m.At(cfg.Key) = cfg.Value
	return m, nil
}

func report(reg *metric.Registry, cfg *Config, last *chainmap.Map[int, string], runErr error) error {
	switch {
	case runErr == nil:
		reg.RecordRun(metric.ResultOK)
	case errors.Is(runErr, context.Canceled), errors.Is(runErr, context.DeadlineExceeded):
		reg.RecordRun(metric.ResultCanceled)
	default:
		reg.RecordRun(metric.ResultError)
	}

	if last != nil {
		if err := reg.TrackMap("driver", last); err != nil {
			return err
		}
	}

	if cfg.Metrics.File == "" {
		return nil
	}
	return reg.WriteToTextfile(cfg.Metrics.File)
}
