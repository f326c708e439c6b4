package subscription

import (
	"context"
	"github.com/cpdtrack/cpd-backend/internal/domain"
	"github.com/google/uuid"
	"sync"
)

var _ subscriptionRepo = &subscriptionRepoMock{}

type subscriptionRepoMock struct {
	GetByUserIDFunc     func(ctx context.Context, userID uuid.UUID) (*domain.Subscription, error)
	GetByCustomerIDFunc func(ctx context.Context, customerID string) (*domain.Subscription, error)
	UpsertFunc          func(ctx context.Context, s *domain.Subscription) (*domain.Subscription, error)

	calls struct {
		GetByUserID []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		GetByCustomerID []struct {
			Ctx        context.Context
			CustomerID string
		}
		Upsert []struct {
			Ctx context.Context
			S   *domain.Subscription
		}
	}
	lockGetByUserID     sync.RWMutex
	lockGetByCustomerID sync.RWMutex
	lockUpsert          sync.RWMutex
}

func (mock *subscriptionRepoMock) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Subscription, error) {
	if mock.GetByUserIDFunc == nil {
		panic("subscriptionRepoMock.GetByUserIDFunc: method is nil but subscriptionRepo.GetByUserID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockGetByUserID.Lock()
	mock.calls.GetByUserID = append(mock.calls.GetByUserID, callInfo)
	mock.lockGetByUserID.Unlock()
	return mock.GetByUserIDFunc(ctx, userID)
}

func (mock *subscriptionRepoMock) GetByUserIDCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockGetByUserID.RLock()
	calls := mock.calls.GetByUserID
	mock.lockGetByUserID.RUnlock()
	return calls
}

func (mock *subscriptionRepoMock) GetByCustomerID(ctx context.Context, customerID string) (*domain.Subscription, error) {
	if mock.GetByCustomerIDFunc == nil {
		panic("subscriptionRepoMock.GetByCustomerIDFunc: method is nil but subscriptionRepo.GetByCustomerID was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		CustomerID string
	}{Ctx: ctx, CustomerID: customerID}
	mock.lockGetByCustomerID.Lock()
	mock.calls.GetByCustomerID = append(mock.calls.GetByCustomerID, callInfo)
	mock.lockGetByCustomerID.Unlock()
	return mock.GetByCustomerIDFunc(ctx, customerID)
}

func (mock *subscriptionRepoMock) GetByCustomerIDCalls() []struct {
	Ctx        context.Context
	CustomerID string
} {
	mock.lockGetByCustomerID.RLock()
	calls := mock.calls.GetByCustomerID
	mock.lockGetByCustomerID.RUnlock()
	return calls
}

func (mock *subscriptionRepoMock) Upsert(ctx context.Context, s *domain.Subscription) (*domain.Subscription, error) {
	if mock.UpsertFunc == nil {
		panic("subscriptionRepoMock.UpsertFunc: method is nil but subscriptionRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   *domain.Subscription
	}{Ctx: ctx, S: s}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, s)
}

func (mock *subscriptionRepoMock) UpsertCalls() []struct {
	Ctx context.Context
	S   *domain.Subscription
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}
