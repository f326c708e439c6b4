package feedback

import (
	"context"
	"github.com/cpdtrack/cpd-backend/internal/domain"
	"sync"
)

var _ feedbackRepo = &feedbackRepoMock{}

type feedbackRepoMock struct {
	CreateFunc func(ctx context.Context, f *domain.Feedback) (*domain.Feedback, error)
	ListFunc   func(ctx context.Context, limit int, offset int) ([]domain.Feedback, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			F   *domain.Feedback
		}
		List []struct {
			Ctx    context.Context
			Limit  int
			Offset int
		}
	}
	lockCreate sync.RWMutex
	lockList   sync.RWMutex
}

func (mock *feedbackRepoMock) Create(ctx context.Context, f *domain.Feedback) (*domain.Feedback, error) {
	if mock.CreateFunc == nil {
		panic("feedbackRepoMock.CreateFunc: method is nil but feedbackRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   *domain.Feedback
	}{Ctx: ctx, F: f}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, f)
}

func (mock *feedbackRepoMock) CreateCalls() []struct {
	Ctx context.Context
	F   *domain.Feedback
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *feedbackRepoMock) List(ctx context.Context, limit int, offset int) ([]domain.Feedback, error) {
	if mock.ListFunc == nil {
		panic("feedbackRepoMock.ListFunc: method is nil but feedbackRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Limit  int
		Offset int
	}{Ctx: ctx, Limit: limit, Offset: offset}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, limit, offset)
}

func (mock *feedbackRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Limit  int
	Offset int
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
