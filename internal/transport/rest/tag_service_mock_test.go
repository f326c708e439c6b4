package rest

import (
	"context"
	"github.com/cpdtrack/cpd-backend/internal/domain"
	"github.com/cpdtrack/cpd-backend/internal/service/tag"
	"sync"
)

var _ tagService = &tagServiceMock{}

type tagServiceMock struct {
	ListTagsFunc        func(ctx context.Context) ([]domain.Tag, error)
	SetActivityTagsFunc func(ctx context.Context, input tag.SetTagsInput) ([]domain.Tag, error)
	SetGoalTagsFunc     func(ctx context.Context, input tag.SetTagsInput) ([]domain.Tag, error)

	calls struct {
		ListTags []struct {
			Ctx context.Context
		}
		SetActivityTags []struct {
			Ctx   context.Context
			Input tag.SetTagsInput
		}
		SetGoalTags []struct {
			Ctx   context.Context
			Input tag.SetTagsInput
		}
	}
	lockListTags        sync.RWMutex
	lockSetActivityTags sync.RWMutex
	lockSetGoalTags     sync.RWMutex
}

func (mock *tagServiceMock) ListTags(ctx context.Context) ([]domain.Tag, error) {
	if mock.ListTagsFunc == nil {
		panic("tagServiceMock.ListTagsFunc: method is nil but tagService.ListTags was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockListTags.Lock()
	mock.calls.ListTags = append(mock.calls.ListTags, callInfo)
	mock.lockListTags.Unlock()
	return mock.ListTagsFunc(ctx)
}

func (mock *tagServiceMock) ListTagsCalls() []struct{ Ctx context.Context } {
	mock.lockListTags.RLock()
	calls := mock.calls.ListTags
	mock.lockListTags.RUnlock()
	return calls
}

func (mock *tagServiceMock) SetActivityTags(ctx context.Context, input tag.SetTagsInput) ([]domain.Tag, error) {
	if mock.SetActivityTagsFunc == nil {
		panic("tagServiceMock.SetActivityTagsFunc: method is nil but tagService.SetActivityTags was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input tag.SetTagsInput
	}{Ctx: ctx, Input: input}
	mock.lockSetActivityTags.Lock()
	mock.calls.SetActivityTags = append(mock.calls.SetActivityTags, callInfo)
	mock.lockSetActivityTags.Unlock()
	return mock.SetActivityTagsFunc(ctx, input)
}

func (mock *tagServiceMock) SetActivityTagsCalls() []struct {
	Ctx   context.Context
	Input tag.SetTagsInput
} {
	mock.lockSetActivityTags.RLock()
	calls := mock.calls.SetActivityTags
	mock.lockSetActivityTags.RUnlock()
	return calls
}

func (mock *tagServiceMock) SetGoalTags(ctx context.Context, input tag.SetTagsInput) ([]domain.Tag, error) {
	if mock.SetGoalTagsFunc == nil {
		panic("tagServiceMock.SetGoalTagsFunc: method is nil but tagService.SetGoalTags was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input tag.SetTagsInput
	}{Ctx: ctx, Input: input}
	mock.lockSetGoalTags.Lock()
	mock.calls.SetGoalTags = append(mock.calls.SetGoalTags, callInfo)
	mock.lockSetGoalTags.Unlock()
	return mock.SetGoalTagsFunc(ctx, input)
}

func (mock *tagServiceMock) SetGoalTagsCalls() []struct {
	Ctx   context.Context
	Input tag.SetTagsInput
} {
	mock.lockSetGoalTags.RLock()
	calls := mock.calls.SetGoalTags
	mock.lockSetGoalTags.RUnlock()
	return calls
}
