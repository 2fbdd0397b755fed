package bulk

import (
	"time"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"aiktp_sync/internal/domain"
)

// LogReporter writes progress to a logger.
type LogReporter struct {
	logger *zap.Logger
}

func NewLogReporter(logger *zap.Logger) *LogReporter {
	return &LogReporter{logger: logger.With(zap.String("component", "bulk_progress"))}
}

func (r *LogReporter) Progress(job *domain.BulkJob) {
	r.logger.Info("progress",
		zap.String("done", humanize.Comma(int64(job.Cursor))+" of "+humanize.Comma(int64(job.Total()))),
		zap.Int("success", job.SuccessCount),
		zap.Int("errors", job.ErrorCount),
	)
}

func (r *LogReporter) Done(job *domain.BulkJob, redirectAfter time.Duration) {
	fields := []zap.Field{
		zap.String("state", string(job.State)),
		zap.String("message", job.Message),
		zap.Duration("redirect_after", redirectAfter),
	}
	if job.State == domain.BulkStopped {
		r.logger.Warn("bulk stopped", fields...)
		return
	}
	r.logger.Info("bulk completed", fields...)
}
