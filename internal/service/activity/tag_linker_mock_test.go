package activity

import (
	"context"
	"github.com/cpdtrack/cpd-backend/internal/domain"
	"github.com/google/uuid"
	"sync"
)

var _ tagLinker = &tagLinkerMock{}

type tagLinkerMock struct {
	ReplaceFunc func(ctx context.Context, userID uuid.UUID, target domain.TagTarget, targetID uuid.UUID, refs []domain.TagRef) ([]domain.Tag, error)
	LoadFunc    func(ctx context.Context, target domain.TagTarget, targetIDs []uuid.UUID) (map[uuid.UUID][]domain.Tag, error)

	calls struct {
		Replace []struct {
			Ctx      context.Context
			UserID   uuid.UUID
			Target   domain.TagTarget
			TargetID uuid.UUID
			Refs     []domain.TagRef
		}
		Load []struct {
			Ctx       context.Context
			Target    domain.TagTarget
			TargetIDs []uuid.UUID
		}
	}
	lockReplace sync.RWMutex
	lockLoad    sync.RWMutex
}

func (mock *tagLinkerMock) Replace(ctx context.Context, userID uuid.UUID, target domain.TagTarget, targetID uuid.UUID, refs []domain.TagRef) ([]domain.Tag, error) {
	if mock.ReplaceFunc == nil {
		panic("tagLinkerMock.ReplaceFunc: method is nil but tagLinker.Replace was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		UserID   uuid.UUID
		Target   domain.TagTarget
		TargetID uuid.UUID
		Refs     []domain.TagRef
	}{Ctx: ctx, UserID: userID, Target: target, TargetID: targetID, Refs: refs}
	mock.lockReplace.Lock()
	mock.calls.Replace = append(mock.calls.Replace, callInfo)
	mock.lockReplace.Unlock()
	return mock.ReplaceFunc(ctx, userID, target, targetID, refs)
}

func (mock *tagLinkerMock) ReplaceCalls() []struct {
	Ctx      context.Context
	UserID   uuid.UUID
	Target   domain.TagTarget
	TargetID uuid.UUID
	Refs     []domain.TagRef
} {
	mock.lockReplace.RLock()
	calls := mock.calls.Replace
	mock.lockReplace.RUnlock()
	return calls
}

func (mock *tagLinkerMock) Load(ctx context.Context, target domain.TagTarget, targetIDs []uuid.UUID) (map[uuid.UUID][]domain.Tag, error) {
	if mock.LoadFunc == nil {
		panic("tagLinkerMock.LoadFunc: method is nil but tagLinker.Load was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Target    domain.TagTarget
		TargetIDs []uuid.UUID
	}{Ctx: ctx, Target: target, TargetIDs: targetIDs}
	mock.lockLoad.Lock()
	mock.calls.Load = append(mock.calls.Load, callInfo)
	mock.lockLoad.Unlock()
	return mock.LoadFunc(ctx, target, targetIDs)
}

func (mock *tagLinkerMock) LoadCalls() []struct {
	Ctx       context.Context
	Target    domain.TagTarget
	TargetIDs []uuid.UUID
} {
	mock.lockLoad.RLock()
	calls := mock.calls.Load
	mock.lockLoad.RUnlock()
	return calls
}
