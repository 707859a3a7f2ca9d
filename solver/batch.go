package solver

import (
	"context"
	"errors"
	"io"
	"runtime"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/timewinder-dev/tetrubik/cas"
	"github.com/timewinder-dev/tetrubik/puzzle"
	"golang.org/x/sync/errgroup"
)

// Job is one puzzle to solve as part of a batch.
type Job struct {
	Name  string
	Start puzzle.State
}

// BatchConfig carries the settings shared by every engine in a batch.
type BatchConfig struct {
	Workers     int // 0 means runtime.NumCPU()
	DebugWriter io.Writer
	Reporter    Reporter
	CAS         cas.CAS
	MaxDepth    int
}

// JobResult is the outcome of one job. Err holds a per-puzzle failure that
// did not stop the batch, such as an invalid start state.
type JobResult struct {
	Job    Job
	RunID  string
	Result *Result
	Err    error
}

// SolveAll solves every job concurrently, each with its own Engine; nothing
// is shared between searches apart from the optional CAS and Reporter, which
// are safe for concurrent use. Results are returned in job order.
//
// Invalid start states are reported per job. ErrSearchExhausted and context
// errors abort the whole batch.
func SolveAll(ctx context.Context, jobs []Job, cfg BatchConfig) ([]JobResult, error) {
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	batchID := uuid.NewString()
	log.Debug().Str("batch", batchID).Int("jobs", len(jobs)).Int("workers", workers).Msg("starting batch")

	results := make([]JobResult, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, job := range jobs {
		results[i] = JobResult{Job: job, RunID: uuid.NewString()}
		g.Go(func() error {
			e := NewEngine(job.Start)
			e.Name = job.Name
			e.Reporter = cfg.Reporter
			e.CAS = cfg.CAS
			e.MaxDepth = cfg.MaxDepth
			if cfg.DebugWriter != nil {
				e.DebugWriter = cfg.DebugWriter
			}

			logger := log.With().Str("batch", batchID).Str("run", results[i].RunID).Str("puzzle", job.Name).Logger()
			logger.Debug().Msg("search started")

			res, err := e.Run(gctx)
			switch {
			case err == nil:
				res.RunID = results[i].RunID
				results[i].Result = res
				logger.Debug().Int("moves", len(res.Moves)).Int("explored", res.Statistics.Explored).Msg("search finished")
				return nil
			case errors.Is(err, puzzle.ErrInvalidState), errors.Is(err, ErrDepthLimit):
				results[i].Err = err
				logger.Debug().Err(err).Msg("search rejected")
				return nil
			default:
				logger.Error().Err(err).Msg("search failed")
				return err
			}
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	log.Debug().Str("batch", batchID).Msg("batch finished")
	return results, nil
}
