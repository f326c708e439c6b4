package dashboard

import (
	"context"
	"github.com/cpdtrack/cpd-backend/internal/domain"
	"github.com/google/uuid"
	"sync"
)

var _ activityRepo = &activityRepoMock{}

type activityRepoMock struct {
	ListFunc func(ctx context.Context, userID uuid.UUID, filter domain.ActivityFilter) ([]domain.Activity, error)

	calls struct {
		List []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Filter domain.ActivityFilter
		}
	}
	lockList sync.RWMutex
}

func (mock *activityRepoMock) List(ctx context.Context, userID uuid.UUID, filter domain.ActivityFilter) ([]domain.Activity, error) {
	if mock.ListFunc == nil {
		panic("activityRepoMock.ListFunc: method is nil but activityRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Filter domain.ActivityFilter
	}{Ctx: ctx, UserID: userID, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, userID, filter)
}

func (mock *activityRepoMock) ListCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Filter domain.ActivityFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
