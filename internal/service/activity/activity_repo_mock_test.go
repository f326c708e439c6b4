package activity

import (
	"context"
	"github.com/cpdtrack/cpd-backend/internal/domain"
	"github.com/google/uuid"
	"sync"
)

var _ activityRepo = &activityRepoMock{}

type activityRepoMock struct {
	GetByIDFunc func(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*domain.Activity, error)
	ListFunc    func(ctx context.Context, userID uuid.UUID, filter domain.ActivityFilter) ([]domain.Activity, error)
	CreateFunc  func(ctx context.Context, a *domain.Activity) (*domain.Activity, error)
	UpdateFunc  func(ctx context.Context, a *domain.Activity) (*domain.Activity, error)
	DeleteFunc  func(ctx context.Context, userID uuid.UUID, id uuid.UUID) error

	calls struct {
		GetByID []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ID     uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Filter domain.ActivityFilter
		}
		Create []struct {
			Ctx context.Context
			A   *domain.Activity
		}
		Update []struct {
			Ctx context.Context
			A   *domain.Activity
		}
		Delete []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ID     uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
	lockCreate  sync.RWMutex
	lockUpdate  sync.RWMutex
	lockDelete  sync.RWMutex
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

func (mock *activityRepoMock) Create(ctx context.Context, a *domain.Activity) (*domain.Activity, error) {
	if mock.CreateFunc == nil {
		panic("activityRepoMock.CreateFunc: method is nil but activityRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		A   *domain.Activity
	}{Ctx: ctx, A: a}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, a)
}

func (mock *activityRepoMock) CreateCalls() []struct {
	Ctx context.Context
	A   *domain.Activity
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *activityRepoMock) Update(ctx context.Context, a *domain.Activity) (*domain.Activity, error) {
	if mock.UpdateFunc == nil {
		panic("activityRepoMock.UpdateFunc: method is nil but activityRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		A   *domain.Activity
	}{Ctx: ctx, A: a}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, a)
}

func (mock *activityRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	A   *domain.Activity
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *activityRepoMock) Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("activityRepoMock.DeleteFunc: method is nil but activityRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		ID     uuid.UUID
	}{Ctx: ctx, UserID: userID, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, id)
}

func (mock *activityRepoMock) DeleteCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	ID     uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
