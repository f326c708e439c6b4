package rest

import (
	"context"
	"github.com/cpdtrack/cpd-backend/internal/domain"
	"github.com/cpdtrack/cpd-backend/internal/service/activity"
	"github.com/google/uuid"
	"sync"
)

var _ activityService = &activityServiceMock{}

type activityServiceMock struct {
	CreateActivityFunc func(ctx context.Context, input activity.CreateActivityInput) (*domain.Activity, error)
	GetActivityFunc    func(ctx context.Context, id uuid.UUID) (*domain.Activity, error)
	ListActivitiesFunc func(ctx context.Context, input activity.ListActivitiesInput) ([]domain.Activity, error)
	UpdateActivityFunc func(ctx context.Context, input activity.UpdateActivityInput) (*domain.Activity, error)
	DeleteActivityFunc func(ctx context.Context, id uuid.UUID) error
	AttachEvidenceFunc func(ctx context.Context, input activity.AttachEvidenceInput) (*domain.Activity, error)

	calls struct {
		CreateActivity []struct {
			Ctx   context.Context
			Input activity.CreateActivityInput
		}
		GetActivity []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListActivities []struct {
			Ctx   context.Context
			Input activity.ListActivitiesInput
		}
		UpdateActivity []struct {
			Ctx   context.Context
			Input activity.UpdateActivityInput
		}
		DeleteActivity []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		AttachEvidence []struct {
			Ctx   context.Context
			Input activity.AttachEvidenceInput
		}
	}
	lockCreateActivity sync.RWMutex
	lockGetActivity    sync.RWMutex
	lockListActivities sync.RWMutex
	lockUpdateActivity sync.RWMutex
	lockDeleteActivity sync.RWMutex
	lockAttachEvidence sync.RWMutex
}

func (mock *activityServiceMock) CreateActivity(ctx context.Context, input activity.CreateActivityInput) (*domain.Activity, error) {
	if mock.CreateActivityFunc == nil {
		panic("activityServiceMock.CreateActivityFunc: method is nil but activityService.CreateActivity was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input activity.CreateActivityInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateActivity.Lock()
	mock.calls.CreateActivity = append(mock.calls.CreateActivity, callInfo)
	mock.lockCreateActivity.Unlock()
	return mock.CreateActivityFunc(ctx, input)
}

func (mock *activityServiceMock) CreateActivityCalls() []struct {
	Ctx   context.Context
	Input activity.CreateActivityInput
} {
	mock.lockCreateActivity.RLock()
	calls := mock.calls.CreateActivity
	mock.lockCreateActivity.RUnlock()
	return calls
}

func (mock *activityServiceMock) GetActivity(ctx context.Context, id uuid.UUID) (*domain.Activity, error) {
	if mock.GetActivityFunc == nil {
		panic("activityServiceMock.GetActivityFunc: method is nil but activityService.GetActivity was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetActivity.Lock()
	mock.calls.GetActivity = append(mock.calls.GetActivity, callInfo)
	mock.lockGetActivity.Unlock()
	return mock.GetActivityFunc(ctx, id)
}

func (mock *activityServiceMock) GetActivityCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetActivity.RLock()
	calls := mock.calls.GetActivity
	mock.lockGetActivity.RUnlock()
	return calls
}

func (mock *activityServiceMock) ListActivities(ctx context.Context, input activity.ListActivitiesInput) ([]domain.Activity, error) {
	if mock.ListActivitiesFunc == nil {
		panic("activityServiceMock.ListActivitiesFunc: method is nil but activityService.ListActivities was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input activity.ListActivitiesInput
	}{Ctx: ctx, Input: input}
	mock.lockListActivities.Lock()
	mock.calls.ListActivities = append(mock.calls.ListActivities, callInfo)
	mock.lockListActivities.Unlock()
	return mock.ListActivitiesFunc(ctx, input)
}

func (mock *activityServiceMock) ListActivitiesCalls() []struct {
	Ctx   context.Context
	Input activity.ListActivitiesInput
} {
	mock.lockListActivities.RLock()
	calls := mock.calls.ListActivities
	mock.lockListActivities.RUnlock()
	return calls
}

func (mock *activityServiceMock) UpdateActivity(ctx context.Context, input activity.UpdateActivityInput) (*domain.Activity, error) {
	if mock.UpdateActivityFunc == nil {
		panic("activityServiceMock.UpdateActivityFunc: method is nil but activityService.UpdateActivity was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input activity.UpdateActivityInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateActivity.Lock()
	mock.calls.UpdateActivity = append(mock.calls.UpdateActivity, callInfo)
	mock.lockUpdateActivity.Unlock()
	return mock.UpdateActivityFunc(ctx, input)
}

func (mock *activityServiceMock) UpdateActivityCalls() []struct {
	Ctx   context.Context
	Input activity.UpdateActivityInput
} {
	mock.lockUpdateActivity.RLock()
	calls := mock.calls.UpdateActivity
	mock.lockUpdateActivity.RUnlock()
	return calls
}

func (mock *activityServiceMock) DeleteActivity(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteActivityFunc == nil {
		panic("activityServiceMock.DeleteActivityFunc: method is nil but activityService.DeleteActivity was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDeleteActivity.Lock()
	mock.calls.DeleteActivity = append(mock.calls.DeleteActivity, callInfo)
	mock.lockDeleteActivity.Unlock()
	return mock.DeleteActivityFunc(ctx, id)
}

func (mock *activityServiceMock) DeleteActivityCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDeleteActivity.RLock()
	calls := mock.calls.DeleteActivity
	mock.lockDeleteActivity.RUnlock()
	return calls
}

func (mock *activityServiceMock) AttachEvidence(ctx context.Context, input activity.AttachEvidenceInput) (*domain.Activity, error) {
	if mock.AttachEvidenceFunc == nil {
		panic("activityServiceMock.AttachEvidenceFunc: method is nil but activityService.AttachEvidence was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input activity.AttachEvidenceInput
	}{Ctx: ctx, Input: input}
	mock.lockAttachEvidence.Lock()
	mock.calls.AttachEvidence = append(mock.calls.AttachEvidence, callInfo)
	mock.lockAttachEvidence.Unlock()
	return mock.AttachEvidenceFunc(ctx, input)
}

func (mock *activityServiceMock) AttachEvidenceCalls() []struct {
	Ctx   context.Context
	Input activity.AttachEvidenceInput
} {
	mock.lockAttachEvidence.RLock()
	calls := mock.calls.AttachEvidence
	mock.lockAttachEvidence.RUnlock()
	return calls
}
