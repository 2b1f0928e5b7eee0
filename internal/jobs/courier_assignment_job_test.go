package jobs

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"parcel/internal/core/application/usecases/commands"
	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAssignHandler struct{ mock.Mock }

func (m *MockAssignHandler) Handle(ctx context.Context, cmd commands.AssignPendingCourierCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

func newJob(handler AssignPendingCourierHandler, schedule string) (*CourierAssignmentJob, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	return NewCourierAssignmentJob(handler, schedule, logger), &buf
}

func TestCourierAssignmentJob_Run_DrainsUntilNothingPending(t *testing.T) {
	handler := &MockAssignHandler{}
	mock.InOrder(
		handler.On("Handle", mock.Anything, mock.Anything).Return(nil).Times(3),
		handler.On("Handle", mock.Anything, mock.Anything).Return(commands.ErrNoShipmentToAssign).Once(),
	)
	job, logs := newJob(handler, "")

	assigned := job.run(t.Context())

	assert.Equal(t, 3, assigned)
	assert.Contains(t, logs.String(), "shipments=3")
	assert.NotContains(t, logs.String(), "level=ERROR")
	handler.AssertExpectations(t)
}

func TestCourierAssignmentJob_Run_NoCouriersIsQuiet(t *testing.T) {
	handler := &MockAssignHandler{}
	handler.On("Handle", mock.Anything, mock.Anything).
		Return(errors.Join(errors.New("dispatch"), services.ErrNoCouriersAvailable)).Once()
	job, logs := newJob(handler, "")

	assigned := job.run(t.Context())

	assert.Zero(t, assigned)
	assert.Empty(t, logs.String())
}

func TestCourierAssignmentJob_Run_LogsUnexpectedErrors(t *testing.T) {
	handler := &MockAssignHandler{}
	mock.InOrder(
		handler.On("Handle", mock.Anything, mock.Anything).Return(nil).Once(),
		handler.On("Handle", mock.Anything, mock.Anything).Return(errors.New("connection refused")).Once(),
	)
	job, logs := newJob(handler, "")

	assigned := job.run(t.Context())

	assert.Equal(t, 1, assigned)
	assert.Contains(t, logs.String(), "level=ERROR")
	assert.Contains(t, logs.String(), "connection refused")
	handler.AssertExpectations(t)
}

func TestCourierAssignmentJob_Run_StopsAtBatchLimit(t *testing.T) {
	handler := &MockAssignHandler{}
	handler.On("Handle", mock.Anything, mock.Anything).Return(nil)
	job, _ := newJob(handler, "")

	assigned := job.run(t.Context())

	assert.Equal(t, maxAssignmentsPerRun, assigned)
	handler.AssertNumberOfCalls(t, "Handle", maxAssignmentsPerRun)
}

func TestCourierAssignmentJob_Run_SkipsStuckShipmentAndLogsItOnce(t *testing.T) {
	stuck := kernel.NewUUID()
	skipsStuck := mock.MatchedBy(func(cmd commands.AssignPendingCourierCommand) bool {
		return len(cmd.Skip()) == 1 && cmd.Skip()[0].IsEqual(stuck)
	})
	handler := &MockAssignHandler{}
	mock.InOrder(
		handler.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.AssignPendingCourierCommand) bool {
			return len(cmd.Skip()) == 0
		})).Return(&commands.ShipmentNotAssignableError{ShipmentID: stuck, Err: errors.New("unknown status 9")}).Once(),
		handler.On("Handle", mock.Anything, skipsStuck).Return(nil).Once(),
		handler.On("Handle", mock.Anything, skipsStuck).Return(commands.ErrNoShipmentToAssign).Once(),
		handler.On("Handle", mock.Anything, skipsStuck).Return(commands.ErrNoShipmentToAssign).Once(),
	)
	job, logs := newJob(handler, "")

	first := job.run(t.Context())
	second := job.run(t.Context())

	assert.Equal(t, 1, first)
	assert.Zero(t, second)
	assert.Equal(t, 1, strings.Count(logs.String(), "level=ERROR"))
	assert.Contains(t, logs.String(), stuck.String())
	handler.AssertExpectations(t)
}

func TestCourierAssignmentJob_Start_InvalidSchedule(t *testing.T) {
	job, _ := newJob(&MockAssignHandler{}, "every now and then")

	require.Error(t, job.Start())
}

func TestJobManager_StartAndStop(t *testing.T) {
	handler := &MockAssignHandler{}
	manager := NewJobManager(handler, "0 0 0 1 1 *", slog.New(slog.DiscardHandler))

	require.NoError(t, manager.StartAll())
	manager.StopAll()

	handler.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

type stubJob struct {
	startErr error
	started  bool
	stopped  bool
}

func (s *stubJob) Start() error {
	if s.startErr != nil {
		return s.startErr
	}
	s.started = true
	return nil
}

func (s *stubJob) Stop() { s.stopped = true }

func TestJobManager_StartAll_StopsStartedJobsOnFailure(t *testing.T) {
	first := &stubJob{}
	broken := &stubJob{startErr: errors.New("bad schedule")}
	manager := &JobManager{}
	manager.register("first", first)
	manager.register("broken", broken)

	err := manager.StartAll()

	require.ErrorContains(t, err, "failed to start broken job")
	assert.True(t, first.started)
	assert.True(t, first.stopped)
	assert.False(t, broken.stopped)
}
