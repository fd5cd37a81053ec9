package jobs

import (
	"context"
	"errors"
	"log/slog"

	"backoffice/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultDispatchSchedule runs the dispatch every five seconds.
const DefaultDispatchSchedule = "*/5 * * * * *"

// Dispatch outcomes reported to the DispatchRecorder.
const (
	OutcomeAssigned  = "assigned"
	OutcomeNoPending = "no_pending"
	OutcomeNoRiders  = "no_riders"
	OutcomeFailed    = "failed"
)

type dispatchHandler interface {
	Handle(ctx context.Context, cmd commands.DispatchPendingDeliveryCommand) error
}

// DispatchRecorder is told the outcome of every run.
type DispatchRecorder interface {
	DispatchRun(outcome string)
}

// RiderDispatchJob periodically hands the oldest pending delivery to the best
// available rider.
type RiderDispatchJob struct {
	handler  dispatchHandler
	recorder DispatchRecorder
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewRiderDispatchJob creates the job. schedule is a six-field cron expression
// (seconds first); empty means DefaultDispatchSchedule. recorder may be nil.
func NewRiderDispatchJob(
	handler dispatchHandler,
	recorder DispatchRecorder,
	schedule string,
	logger *slog.Logger,
) *RiderDispatchJob {
	if schedule == "" {
		schedule = DefaultDispatchSchedule
	}
	return &RiderDispatchJob{
		handler:  handler,
		recorder: recorder,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "rider_dispatch_job"),
	}
}

func (j *RiderDispatchJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.RunOnce(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Rider dispatch job started", "schedule", j.schedule)
	return nil
}

// Stop waits for a running dispatch to finish.
func (j *RiderDispatchJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Rider dispatch job stopped")
}

// RunOnce performs a single dispatch and returns its outcome. Having nothing
// to dispatch is expected and is not logged as an error.
func (j *RiderDispatchJob) RunOnce(ctx context.Context) string {
	err := j.handler.Handle(ctx, commands.NewDispatchPendingDeliveryCommand())

	var outcome string
	switch {
	case err == nil:
		outcome = OutcomeAssigned
		j.logger.InfoContext(ctx, "Pending delivery dispatched")
	case errors.Is(err, commands.ErrNoPendingDelivery):
		outcome = OutcomeNoPending
	case errors.Is(err, commands.ErrNoAvailableRiders):
		outcome = OutcomeNoRiders
		j.logger.DebugContext(ctx, "Pending delivery waits for a rider")
	default:
		outcome = OutcomeFailed
		j.logger.ErrorContext(ctx, "Rider dispatch job failed", "error", err)
	}

	if j.recorder != nil {
		j.recorder.DispatchRun(outcome)
	}
	return outcome
}
