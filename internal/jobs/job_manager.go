package jobs

import (
	"fmt"
	"log/slog"
)

type scheduledJob interface {
	Start() error
	Stop()
}

// JobManager owns the background jobs of the service and starts and stops
// them as a group.
type JobManager struct {
	names []string
	jobs  []scheduledJob
}

func NewJobManager(
	assignCourierHandler AssignPendingCourierHandler,
	assignmentSchedule string,
	logger *slog.Logger,
) *JobManager {
	jm := &JobManager{}
	jm.register("courier assignment", NewCourierAssignmentJob(assignCourierHandler, assignmentSchedule, logger))
	return jm
}

func (jm *JobManager) register(name string, job scheduledJob) {
	jm.names = append(jm.names, name)
	jm.jobs = append(jm.jobs, job)
}

// StartAll starts every job in registration order. When one fails, the jobs
// already started are stopped again before the error is returned.
func (jm *JobManager) StartAll() error {
	for i, job := range jm.jobs {
		if err := job.Start(); err != nil {
			for j := i - 1; j >= 0; j-- {
				jm.jobs[j].Stop()
			}
			return fmt.Errorf("failed to start %s job: %w", jm.names[i], err)
		}
	}
	return nil
}

// StopAll stops the jobs in reverse order and waits for running executions.
func (jm *JobManager) StopAll() {
	for i := len(jm.jobs) - 1; i >= 0; i-- {
		jm.jobs[i].Stop()
	}
}
