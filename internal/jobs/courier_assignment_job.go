package jobs

import (
	"context"
	"errors"
	"log/slog"

	"parcel/internal/core/application/usecases/commands"
	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/services"

	"github.com/robfig/cron/v3"
)

const (
	// DefaultAssignmentSchedule runs the assignment every ten seconds.
	DefaultAssignmentSchedule = "*/10 * * * * *"

	// maxAssignmentsPerRun bounds how many shipments one tick may assign.
	maxAssignmentsPerRun = 50
)

// AssignPendingCourierHandler assigns a courier to the oldest unassigned shipment.
type AssignPendingCourierHandler interface {
	Handle(ctx context.Context, cmd commands.AssignPendingCourierCommand) error
}

// CourierAssignmentJob assigns couriers to shipments that were registered
// without one. Each run drains the backlog until nothing is pending, no
// courier is free, or maxAssignmentsPerRun is reached.
type CourierAssignmentJob struct {
	handler  AssignPendingCourierHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger

	// skipped lives for the life of the process. Runs never overlap
	// (SkipIfStillRunning), so it needs no lock.
	skipped []kernel.UUID
}

// NewCourierAssignmentJob creates the job. An empty schedule means
// DefaultAssignmentSchedule; schedules use the six-field (seconds) syntax.
func NewCourierAssignmentJob(
	handler AssignPendingCourierHandler,
	schedule string,
	logger *slog.Logger,
) *CourierAssignmentJob {
	if schedule == "" {
		schedule = DefaultAssignmentSchedule
	}

	return &CourierAssignmentJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With("component", "courier_assignment_job"),
	}
}

// Start registers the job with its schedule and starts the scheduler.
func (j *CourierAssignmentJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Courier assignment job started", "schedule", j.schedule)
	return nil
}

// Stop stops the scheduler and waits for a running assignment to finish.
func (j *CourierAssignmentJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Courier assignment job stopped")
}

// run returns the number of shipments assigned. A shipment that cannot be
// assigned is logged once and skipped from then on, so it does not block the
// ones behind it.
func (j *CourierAssignmentJob) run(ctx context.Context) int {
	assigned := 0
	for range maxAssignmentsPerRun {
		err := j.handler.Handle(ctx, commands.NewAssignPendingCourierCommand(j.skipped...))
		if err == nil {
			assigned++
			continue
		}

		var stuck *commands.ShipmentNotAssignableError
		if errors.As(err, &stuck) {
			j.skipped = append(j.skipped, stuck.ShipmentID)
			j.logger.ErrorContext(ctx, "Shipment skipped by courier assignment",
				"shipment_id", stuck.ShipmentID.String(), "error", err)
			continue
		}

		// Only log errors that are not expected idle conditions
		if !errors.Is(err, commands.ErrNoShipmentToAssign) && !errors.Is(err, services.ErrNoCouriersAvailable) {
			j.logger.ErrorContext(ctx, "Courier assignment job failed", "error", err)
		}
		break
	}

	if assigned > 0 {
		j.logger.InfoContext(ctx, "Couriers assigned", "shipments", assigned)
	}
	return assigned
}
