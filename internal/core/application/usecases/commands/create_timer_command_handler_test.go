package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/timer"
	"kitchen/internal/core/ports"
	"kitchen/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCreateTimerRepository struct{ mock.Mock }

func (m *MockCreateTimerRepository) Add(ctx context.Context, t *timer.KitchenTimer) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}
func (m *MockCreateTimerRepository) Update(_ context.Context, _ *timer.KitchenTimer) error {
	return errors.New("not implemented in mock")
}
func (m *MockCreateTimerRepository) Get(_ context.Context, _ kernel.UUID) (*timer.KitchenTimer, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockCreateTimerRepository) GetAllRunning(_ context.Context) ([]*timer.KitchenTimer, error) {
	return nil, errors.New("not implemented in mock")
}

type MockCreateTimerUoW struct{ mock.Mock }

func (m *MockCreateTimerUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCreateTimerUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCreateTimerUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCreateTimerUoW) TimerRepository() ports.TimerRepository {
	args := m.Called()
	return args.Get(0).(ports.TimerRepository)
}

type MockCreateTimerUoWFactory struct{ mock.Mock }

func (m *MockCreateTimerUoWFactory) Create() commands.TimerUoW {
	args := m.Called()
	return args.Get(0).(commands.TimerUoW)
}

func TestCreateTimerCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateTimerCommand(
		kernel.NewUUID(), "Pasta al dente", timer.TypeCooking, 9*time.Minute,
		kernel.PriorityLevelHigh, nil, nil, false, false)
	require.NoError(t, err)

	var persisted *timer.KitchenTimer
	timerRepo := new(MockCreateTimerRepository)
	timerRepo.On("Add", mock.Anything, mock.AnythingOfType("*timer.KitchenTimer")).
		Run(func(args mock.Arguments) {
			persisted = args.Get(1).(*timer.KitchenTimer)
		}).
		Return(nil).Once()

	uow := new(MockCreateTimerUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("TimerRepository").Return(timerRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCreateTimerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateTimerCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, persisted)
	assert.Equal(t, "Pasta al dente", persisted.Label())
	assert.Equal(t, timer.Created, persisted.Status())
	assert.Equal(t, 9*time.Minute, persisted.OriginalDuration())
	assert.Equal(t, kernel.PriorityLevelHigh, persisted.Priority().Level())
	uow.AssertExpectations(t)
	timerRepo.AssertExpectations(t)
}

func TestCreateTimerCommandHandler_Handle_AutoStartAndLinks(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	stationID := kernel.NewUUID()
	cmd, err := commands.NewCreateTimerCommand(
		kernel.NewUUID(), "Fryer batch", timer.TypeCooking, 3*time.Minute,
		kernel.PriorityLevelMedium, &orderID, &stationID, false, true)
	require.NoError(t, err)

	var persisted *timer.KitchenTimer
	timerRepo := new(MockCreateTimerRepository)
	timerRepo.On("Add", mock.Anything, mock.AnythingOfType("*timer.KitchenTimer")).
		Run(func(args mock.Arguments) {
			persisted = args.Get(1).(*timer.KitchenTimer)
		}).
		Return(nil).Once()

	uow := new(MockCreateTimerUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("TimerRepository").Return(timerRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCreateTimerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateTimerCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, persisted)
	assert.Equal(t, timer.Running, persisted.Status())
	require.NotNil(t, persisted.Order())
	assert.True(t, persisted.Order().IsEqual(orderID))
	require.NotNil(t, persisted.Station())
	assert.True(t, persisted.Station().IsEqual(stationID))
}

func TestCreateTimerCommandHandler_Handle_InvalidPriority(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateTimerCommand(
		kernel.NewUUID(), "Broken", timer.TypeReminder, time.Minute,
		99, nil, nil, false, false)
	require.NoError(t, err)

	factory := new(MockCreateTimerUoWFactory)

	h := commands.NewCreateTimerCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateTimerCommandHandler_Handle_NotConstructedCommand(t *testing.T) {
	ctx := t.Context()
	factory := new(MockCreateTimerUoWFactory)

	h := commands.NewCreateTimerCommandHandler(factory)
	err := h.Handle(ctx, commands.CreateTimerCommand{})

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreateTimerCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
