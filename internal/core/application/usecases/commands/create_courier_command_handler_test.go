package commands_test

import (
	"errors"
	"testing"

	"parcel/internal/core/application/usecases/commands"
	"parcel/internal/core/domain/model/courier"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCreateCourierCommand(t *testing.T) {
	cmd, err := commands.NewCreateCourierCommand("  John Doe ")
	require.NoError(t, err)
	assert.Equal(t, "John Doe", cmd.Name())
	require.NoError(t, cmd.CourierID().Validate())

	_, err = commands.NewCreateCourierCommand("")
	require.ErrorIs(t, err, commands.ErrNameIsRequired)
}

func TestCreateCourierCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewCreateCourierCommand("John Doe")
	require.NoError(t, err)

	mockRepo := new(MockCourierRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockCourierUoWFactory)

	// Set up expectations in order
	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("CourierRepository").Return(mockRepo).Once(),
		mockRepo.On("Add", ctx, mock.MatchedBy(func(c *courier.Courier) bool {
			return c.ID().IsEqual(cmd.CourierID()) && c.Name() == "John Doe" && c.IsAvailable()
		})).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateCourierCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestCreateCourierCommandHandler_Handle_InvalidCommand(t *testing.T) {
	// Arrange
	var invalidCmd commands.CreateCourierCommand // zero value command

	mockFactory := new(MockCourierUoWFactory)
	handler := commands.NewCreateCourierCommandHandler(mockFactory)

	// Act
	err := handler.Handle(t.Context(), invalidCmd)

	// Assert
	require.ErrorIs(t, err, commands.ErrCreateCourierCommandIsNotConstructed)
	mockFactory.AssertNotCalled(t, "Create")
}

func TestCreateCourierCommandHandler_Handle_RepositoryAddError(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewCreateCourierCommand("John Doe")
	require.NoError(t, err)

	expectedError := errors.New("repository add failed")
	mockRepo := new(MockCourierRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockCourierUoWFactory)

	mock.InOrder(
		mockFactory.On("Create").Return(mockUoW).Once(),
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("CourierRepository").Return(mockRepo).Once(),
		mockRepo.On("Add", ctx, mock.AnythingOfType("*courier.Courier")).Return(expectedError).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewCreateCourierCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, expectedError)
	mockUoW.AssertNotCalled(t, "Commit", mock.Anything)
	mockUoW.AssertExpectations(t)
}
