package rest

import (
	"context"
	"github.com/cpdtrack/cpd-backend/internal/domain"
	"github.com/cpdtrack/cpd-backend/internal/service/goal"
	"github.com/google/uuid"
	"sync"
)

var _ goalService = &goalServiceMock{}

type goalServiceMock struct {
	CreateGoalFunc func(ctx context.Context, input goal.CreateGoalInput) (*domain.Goal, error)
	GetGoalFunc    func(ctx context.Context, id uuid.UUID) (*domain.Goal, error)
	ListGoalsFunc  func(ctx context.Context, year string) ([]domain.Goal, error)
	UpdateGoalFunc func(ctx context.Context, input goal.UpdateGoalInput) (*domain.Goal, error)
	DeleteGoalFunc func(ctx context.Context, id uuid.UUID) error

	calls struct {
		CreateGoal []struct {
			Ctx   context.Context
			Input goal.CreateGoalInput
		}
		GetGoal []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListGoals []struct {
			Ctx  context.Context
			Year string
		}
		UpdateGoal []struct {
			Ctx   context.Context
			Input goal.UpdateGoalInput
		}
		DeleteGoal []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockCreateGoal sync.RWMutex
	lockGetGoal    sync.RWMutex
	lockListGoals  sync.RWMutex
	lockUpdateGoal sync.RWMutex
	lockDeleteGoal sync.RWMutex
}

func (mock *goalServiceMock) CreateGoal(ctx context.Context, input goal.CreateGoalInput) (*domain.Goal, error) {
	if mock.CreateGoalFunc == nil {
		panic("goalServiceMock.CreateGoalFunc: method is nil but goalService.CreateGoal was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input goal.CreateGoalInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateGoal.Lock()
	mock.calls.CreateGoal = append(mock.calls.CreateGoal, callInfo)
	mock.lockCreateGoal.Unlock()
	return mock.CreateGoalFunc(ctx, input)
}

func (mock *goalServiceMock) CreateGoalCalls() []struct {
	Ctx   context.Context
	Input goal.CreateGoalInput
} {
	mock.lockCreateGoal.RLock()
	calls := mock.calls.CreateGoal
	mock.lockCreateGoal.RUnlock()
	return calls
}

func (mock *goalServiceMock) GetGoal(ctx context.Context, id uuid.UUID) (*domain.Goal, error) {
	if mock.GetGoalFunc == nil {
		panic("goalServiceMock.GetGoalFunc: method is nil but goalService.GetGoal was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetGoal.Lock()
	mock.calls.GetGoal = append(mock.calls.GetGoal, callInfo)
	mock.lockGetGoal.Unlock()
	return mock.GetGoalFunc(ctx, id)
}

func (mock *goalServiceMock) GetGoalCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetGoal.RLock()
	calls := mock.calls.GetGoal
	mock.lockGetGoal.RUnlock()
	return calls
}

func (mock *goalServiceMock) ListGoals(ctx context.Context, year string) ([]domain.Goal, error) {
	if mock.ListGoalsFunc == nil {
		panic("goalServiceMock.ListGoalsFunc: method is nil but goalService.ListGoals was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Year string
	}{Ctx: ctx, Year: year}
	mock.lockListGoals.Lock()
	mock.calls.ListGoals = append(mock.calls.ListGoals, callInfo)
	mock.lockListGoals.Unlock()
	return mock.ListGoalsFunc(ctx, year)
}

func (mock *goalServiceMock) ListGoalsCalls() []struct {
	Ctx  context.Context
	Year string
} {
	mock.lockListGoals.RLock()
	calls := mock.calls.ListGoals
	mock.lockListGoals.RUnlock()
	return calls
}

func (mock *goalServiceMock) UpdateGoal(ctx context.Context, input goal.UpdateGoalInput) (*domain.Goal, error) {
	if mock.UpdateGoalFunc == nil {
		panic("goalServiceMock.UpdateGoalFunc: method is nil but goalService.UpdateGoal was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input goal.UpdateGoalInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateGoal.Lock()
	mock.calls.UpdateGoal = append(mock.calls.UpdateGoal, callInfo)
	mock.lockUpdateGoal.Unlock()
	return mock.UpdateGoalFunc(ctx, input)
}

func (mock *goalServiceMock) UpdateGoalCalls() []struct {
	Ctx   context.Context
	Input goal.UpdateGoalInput
} {
	mock.lockUpdateGoal.RLock()
	calls := mock.calls.UpdateGoal
	mock.lockUpdateGoal.RUnlock()
	return calls
}

func (mock *goalServiceMock) DeleteGoal(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteGoalFunc == nil {
		panic("goalServiceMock.DeleteGoalFunc: method is nil but goalService.DeleteGoal was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDeleteGoal.Lock()
	mock.calls.DeleteGoal = append(mock.calls.DeleteGoal, callInfo)
	mock.lockDeleteGoal.Unlock()
	return mock.DeleteGoalFunc(ctx, id)
}

func (mock *goalServiceMock) DeleteGoalCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDeleteGoal.RLock()
	calls := mock.calls.DeleteGoal
	mock.lockDeleteGoal.RUnlock()
	return calls
}
