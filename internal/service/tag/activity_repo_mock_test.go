package tag

import (
	"context"
	"github.com/cpdtrack/cpd-backend/internal/domain"
	"github.com/google/uuid"
	"sync"
)

var _ activityRepo = &activityRepoMock{}

type activityRepoMock struct {
	GetByIDFunc func(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*domain.Activity, error)

	calls struct {
		GetByID []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ID     uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *activityRepoMock) GetByID(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*domain.Activity, error) {
	if mock.GetByIDFunc == nil {
		panic("activityRepoMock.GetByIDFunc: method is nil but activityRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		ID     uuid.UUID
	}{Ctx: ctx, UserID: userID, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, id)
}

func (mock *activityRepoMock) GetByIDCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	ID     uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}
