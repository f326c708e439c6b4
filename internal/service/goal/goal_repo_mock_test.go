package goal

import (
	"context"
	"github.com/cpdtrack/cpd-backend/internal/domain"
	"github.com/google/uuid"
	"sync"
)

var _ goalRepo = &goalRepoMock{}

type goalRepoMock struct {
	GetByIDFunc func(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*domain.Goal, error)
	ListFunc    func(ctx context.Context, userID uuid.UUID, year string) ([]domain.Goal, error)
	CreateFunc  func(ctx context.Context, g *domain.Goal) (*domain.Goal, error)
	UpdateFunc  func(ctx context.Context, g *domain.Goal) (*domain.Goal, error)
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
			Year   string
		}
		Create []struct {
			Ctx context.Context
			G   *domain.Goal
		}
		Update []struct {
			Ctx context.Context
			G   *domain.Goal
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

func (mock *goalRepoMock) GetByID(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*domain.Goal, error) {
	if mock.GetByIDFunc == nil {
		panic("goalRepoMock.GetByIDFunc: method is nil but goalRepo.GetByID was just called")
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

func (mock *goalRepoMock) GetByIDCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	ID     uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *goalRepoMock) List(ctx context.Context, userID uuid.UUID, year string) ([]domain.Goal, error) {
	if mock.ListFunc == nil {
		panic("goalRepoMock.ListFunc: method is nil but goalRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Year   string
	}{Ctx: ctx, UserID: userID, Year: year}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, userID, year)
}

func (mock *goalRepoMock) ListCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Year   string
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *goalRepoMock) Create(ctx context.Context, g *domain.Goal) (*domain.Goal, error) {
	if mock.CreateFunc == nil {
		panic("goalRepoMock.CreateFunc: method is nil but goalRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		G   *domain.Goal
	}{Ctx: ctx, G: g}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, g)
}

func (mock *goalRepoMock) CreateCalls() []struct {
	Ctx context.Context
	G   *domain.Goal
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *goalRepoMock) Update(ctx context.Context, g *domain.Goal) (*domain.Goal, error) {
	if mock.UpdateFunc == nil {
		panic("goalRepoMock.UpdateFunc: method is nil but goalRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		G   *domain.Goal
	}{Ctx: ctx, G: g}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, g)
}

func (mock *goalRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	G   *domain.Goal
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *goalRepoMock) Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("goalRepoMock.DeleteFunc: method is nil but goalRepo.Delete was just called")
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

func (mock *goalRepoMock) DeleteCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	ID     uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
