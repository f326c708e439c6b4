package profile

import (
	"context"
	"github.com/cpdtrack/cpd-backend/internal/domain"
	"github.com/google/uuid"
	"sync"
)

var _ profileRepo = &profileRepoMock{}

type profileRepoMock struct {
	GetByUserIDFunc func(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	ListFunc        func(ctx context.Context, limit int, offset int) ([]domain.Profile, error)
	UpsertFunc      func(ctx context.Context, p *domain.Profile) (*domain.Profile, error)
	UpdateRoleFunc  func(ctx context.Context, userID uuid.UUID, role domain.Role) (*domain.Profile, error)

	calls struct {
		GetByUserID []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			Limit  int
			Offset int
		}
		Upsert []struct {
			Ctx context.Context
			P   *domain.Profile
		}
		UpdateRole []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Role   domain.Role
		}
	}
	lockGetByUserID sync.RWMutex
	lockList        sync.RWMutex
	lockUpsert      sync.RWMutex
	lockUpdateRole  sync.RWMutex
}

func (mock *profileRepoMock) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	if mock.GetByUserIDFunc == nil {
		panic("profileRepoMock.GetByUserIDFunc: method is nil but profileRepo.GetByUserID was just called")
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

func (mock *profileRepoMock) GetByUserIDCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockGetByUserID.RLock()
	calls := mock.calls.GetByUserID
	mock.lockGetByUserID.RUnlock()
	return calls
}

func (mock *profileRepoMock) List(ctx context.Context, limit int, offset int) ([]domain.Profile, error) {
	if mock.ListFunc == nil {
		panic("profileRepoMock.ListFunc: method is nil but profileRepo.List was just called")
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

func (mock *profileRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Limit  int
	Offset int
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *profileRepoMock) Upsert(ctx context.Context, p *domain.Profile) (*domain.Profile, error) {
	if mock.UpsertFunc == nil {
		panic("profileRepoMock.UpsertFunc: method is nil but profileRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   *domain.Profile
	}{Ctx: ctx, P: p}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, p)
}

func (mock *profileRepoMock) UpsertCalls() []struct {
	Ctx context.Context
	P   *domain.Profile
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

func (mock *profileRepoMock) UpdateRole(ctx context.Context, userID uuid.UUID, role domain.Role) (*domain.Profile, error) {
	if mock.UpdateRoleFunc == nil {
		panic("profileRepoMock.UpdateRoleFunc: method is nil but profileRepo.UpdateRole was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Role   domain.Role
	}{Ctx: ctx, UserID: userID, Role: role}
	mock.lockUpdateRole.Lock()
	mock.calls.UpdateRole = append(mock.calls.UpdateRole, callInfo)
	mock.lockUpdateRole.Unlock()
	return mock.UpdateRoleFunc(ctx, userID, role)
}

func (mock *profileRepoMock) UpdateRoleCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Role   domain.Role
} {
	mock.lockUpdateRole.RLock()
	calls := mock.calls.UpdateRole
	mock.lockUpdateRole.RUnlock()
	return calls
}
