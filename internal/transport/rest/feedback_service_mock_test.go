package rest

import (
	"context"
	"github.com/cpdtrack/cpd-backend/internal/domain"
	"github.com/cpdtrack/cpd-backend/internal/service/feedback"
	"sync"
)

var _ feedbackService = &feedbackServiceMock{}

type feedbackServiceMock struct {
	CreateFeedbackFunc func(ctx context.Context, input feedback.CreateFeedbackInput) (*domain.Feedback, error)
	ListFeedbackFunc   func(ctx context.Context, limit int, offset int) ([]domain.Feedback, error)

	calls struct {
		CreateFeedback []struct {
			Ctx   context.Context
			Input feedback.CreateFeedbackInput
		}
		ListFeedback []struct {
			Ctx    context.Context
			Limit  int
			Offset int
		}
	}
	lockCreateFeedback sync.RWMutex
	lockListFeedback   sync.RWMutex
}

func (mock *feedbackServiceMock) CreateFeedback(ctx context.Context, input feedback.CreateFeedbackInput) (*domain.Feedback, error) {
	if mock.CreateFeedbackFunc == nil {
		panic("feedbackServiceMock.CreateFeedbackFunc: method is nil but feedbackService.CreateFeedback was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input feedback.CreateFeedbackInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateFeedback.Lock()
	mock.calls.CreateFeedback = append(mock.calls.CreateFeedback, callInfo)
	mock.lockCreateFeedback.Unlock()
	return mock.CreateFeedbackFunc(ctx, input)
}

func (mock *feedbackServiceMock) CreateFeedbackCalls() []struct {
	Ctx   context.Context
	Input feedback.CreateFeedbackInput
} {
	mock.lockCreateFeedback.RLock()
	calls := mock.calls.CreateFeedback
	mock.lockCreateFeedback.RUnlock()
	return calls
}

func (mock *feedbackServiceMock) ListFeedback(ctx context.Context, limit int, offset int) ([]domain.Feedback, error) {
	if mock.ListFeedbackFunc == nil {
		panic("feedbackServiceMock.ListFeedbackFunc: method is nil but feedbackService.ListFeedback was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Limit  int
		Offset int
	}{Ctx: ctx, Limit: limit, Offset: offset}
	mock.lockListFeedback.Lock()
	mock.calls.ListFeedback = append(mock.calls.ListFeedback, callInfo)
	mock.lockListFeedback.Unlock()
	return mock.ListFeedbackFunc(ctx, limit, offset)
}

func (mock *feedbackServiceMock) ListFeedbackCalls() []struct {
	Ctx    context.Context
	Limit  int
	Offset int
} {
	mock.lockListFeedback.RLock()
	calls := mock.calls.ListFeedback
	mock.lockListFeedback.RUnlock()
	return calls
}
