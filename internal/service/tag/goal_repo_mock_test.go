package tag

import (
	"context"
	"github.com/cpdtrack/cpd-backend/internal/domain"
	"github.com/google/uuid"
	"sync"
)

var _ goalRepo = &goalRepoMock{}

type goalRepoMock struct {
	GetByIDFunc func(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*domain.Goal, error)

	calls struct {
		GetByID []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ID     uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
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
