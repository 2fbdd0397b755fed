package bulk

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"aiktp_sync/internal/domain"
)

const (
	DefaultItemDelay    = 500 * time.Millisecond
	DefaultStopRedirect = 5 * time.Second
	DefaultDoneRedirect = 3 * time.Second
)

// Processor generates content for one record. An error for which
// domain.IsInsufficientCredits holds halts the whole run.
type Processor interface {
	Process(ctx context.Context, recordID int64, op domain.Operation) error
}

// ProcessorFunc adapts a function to Processor.
type ProcessorFunc func(ctx context.Context, recordID int64, op domain.Operation) error

func (f ProcessorFunc) Process(ctx context.Context, recordID int64, op domain.Operation) error {
	return f(ctx, recordID, op)
}

// Reporter receives progress. Done is called once with the final job and the
// delay after which the admin screen should move on.
type Reporter interface {
	Progress(job *domain.BulkJob)
	Done(job *domain.BulkJob, redirectAfter time.Duration)
}

type RunnerConfig struct {
	ItemDelay    time.Duration
	StopRedirect time.Duration
	DoneRedirect time.Duration
}

// Runner works through a job strictly one record at a time.
type Runner struct {
	processor Processor
	reporter  Reporter
	logger    *zap.Logger
	cfg       RunnerConfig
	stopped   atomic.Bool
	sleep     func(ctx context.Context, d time.Duration) error
}

func NewRunner(processor Processor, reporter Reporter, logger *zap.Logger, cfg RunnerConfig) *Runner {
	if cfg.StopRedirect <= 0 {
		cfg.StopRedirect = DefaultStopRedirect
	}
	if cfg.DoneRedirect <= 0 {
		cfg.DoneRedirect = DefaultDoneRedirect
	}
	return &Runner{
		processor: processor,
		reporter:  reporter,
		logger:    logger.With(zap.String("component", "bulk_runner")),
		cfg:       cfg,
		sleep:     sleepCtx,
	}
}

// Stop asks the runner to finish before the next record. The record in
// flight is not interrupted.
func (r *Runner) Stop() {
	r.stopped.Store(true)
}

// NewJob returns a queued job over ids.
func NewJob(ids []int64, op domain.Operation) *domain.BulkJob {
	if !op.Valid() {
		op = domain.OperationDescription
	}
	return &domain.BulkJob{RecordIDs: ids, Operation: op, State: domain.BulkQueued}
}

func (r *Runner) Run(ctx context.Context, job *domain.BulkJob) (*domain.BulkJob, error) {
	if job.State != domain.BulkQueued {
		return job, fmt.Errorf("run bulk job in state %s: %w", job.State, domain.ErrInvalidInput)
	}

	r.logger.Info("bulk run started",
		zap.Int("total", job.Total()),
		zap.String("operation", string(job.Operation)),
	)
	job.State = domain.BulkProcessing

	for job.Cursor < job.Total() {
		if r.stopped.Load() {
			job.State = domain.BulkStopped
			job.Message = "stopped"
			r.finish(job, r.cfg.StopRedirect)
			return job, nil
		}

		id := job.RecordIDs[job.Cursor]
		job.Cursor++

		err := r.processor.Process(ctx, id, job.Operation)
		switch {
		case err == nil:
			job.SuccessCount++
		case domain.IsInsufficientCredits(err):
			job.ErrorCount++
			job.State = domain.BulkStopped
			job.Message = creditsMessage(err)
			r.logger.Warn("bulk run halted, out of credits", zap.Int64("record_id", id))
			r.reporter.Progress(job)
			r.finish(job, r.cfg.StopRedirect)
			return job, nil
		default:
			job.ErrorCount++
			r.logger.Warn("bulk item failed", zap.Int64("record_id", id), zap.Error(err))
		}
		r.reporter.Progress(job)

		if job.Cursor < job.Total() && r.cfg.ItemDelay > 0 {
			if err := r.sleep(ctx, r.cfg.ItemDelay); err != nil {
				job.State = domain.BulkStopped
				job.Message = err.Error()
				r.finish(job, r.cfg.StopRedirect)
				return job, err
			}
		}
	}

	job.State = domain.BulkCompleted
	job.Message = completionMessage(job)
	r.finish(job, r.cfg.DoneRedirect)
	return job, nil
}

func (r *Runner) finish(job *domain.BulkJob, redirect time.Duration) {
	r.logger.Info("bulk run finished",
		zap.String("state", string(job.State)),
		zap.Int("success", job.SuccessCount),
		zap.Int("errors", job.ErrorCount),
		zap.Int("total", job.Total()),
	)
	r.reporter.Done(job, redirect)
}

func completionMessage(job *domain.BulkJob) string {
	msg := fmt.Sprintf("Completed! Successfully generated %d descriptions.", job.SuccessCount)
	if job.ErrorCount > 0 {
		msg += fmt.Sprintf(" %d errors occurred.", job.ErrorCount)
	}
	return msg
}

func creditsMessage(err error) string {
	var apiErr *domain.APIError
	if errors.As(err, &apiErr) && apiErr.Message != domain.CreditsExhaustedCode {
		return apiErr.Message
	}
	return "Not enough credits to generate content."
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
