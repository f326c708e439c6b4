package rest

import (
	"context"
	"github.com/cpdtrack/cpd-backend/internal/domain"
	"github.com/cpdtrack/cpd-backend/internal/service/profile"
	"github.com/google/uuid"
	"sync"
)

var _ profileService = &profileServiceMock{}

type profileServiceMock struct {
	GetProfileFunc    func(ctx context.Context) (*domain.Profile, error)
	UpsertProfileFunc func(ctx context.Context, input profile.UpsertProfileInput) (*domain.Profile, error)
	ListProfilesFunc  func(ctx context.Context, limit int, offset int) ([]domain.Profile, error)
	SetRoleFunc       func(ctx context.Context, targetUserID uuid.UUID, role domain.Role) (*domain.Profile, error)

	calls struct {
		GetProfile []struct {
			Ctx context.Context
		}
		UpsertProfile []struct {
			Ctx   context.Context
			Input profile.UpsertProfileInput
		}
		ListProfiles []struct {
			Ctx    context.Context
			Limit  int
			Offset int
		}
		SetRole []struct {
			Ctx          context.Context
			TargetUserID uuid.UUID
			Role         domain.Role
		}
	}
	lockGetProfile    sync.RWMutex
	lockUpsertProfile sync.RWMutex
	lockListProfiles  sync.RWMutex
	lockSetRole       sync.RWMutex
}

func (mock *profileServiceMock) GetProfile(ctx context.Context) (*domain.Profile, error) {
	if mock.GetProfileFunc == nil {
		panic("profileServiceMock.GetProfileFunc: method is nil but profileService.GetProfile was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockGetProfile.Lock()
	mock.calls.GetProfile = append(mock.calls.GetProfile, callInfo)
	mock.lockGetProfile.Unlock()
	return mock.GetProfileFunc(ctx)
}

func (mock *profileServiceMock) GetProfileCalls() []struct{ Ctx context.Context } {
	mock.lockGetProfile.RLock()
	calls := mock.calls.GetProfile
	mock.lockGetProfile.RUnlock()
	return calls
}

func (mock *profileServiceMock) UpsertProfile(ctx context.Context, input profile.UpsertProfileInput) (*domain.Profile, error) {
	if mock.UpsertProfileFunc == nil {
		panic("profileServiceMock.UpsertProfileFunc: method is nil but profileService.UpsertProfile was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input profile.UpsertProfileInput
	}{Ctx: ctx, Input: input}
	mock.lockUpsertProfile.Lock()
	mock.calls.UpsertProfile = append(mock.calls.UpsertProfile, callInfo)
	mock.lockUpsertProfile.Unlock()
	return mock.UpsertProfileFunc(ctx, input)
}

func (mock *profileServiceMock) UpsertProfileCalls() []struct {
	Ctx   context.Context
	Input profile.UpsertProfileInput
} {
	mock.lockUpsertProfile.RLock()
	calls := mock.calls.UpsertProfile
	mock.lockUpsertProfile.RUnlock()
	return calls
}

func (mock *profileServiceMock) ListProfiles(ctx context.Context, limit int, offset int) ([]domain.Profile, error) {
	if mock.ListProfilesFunc == nil {
		panic("profileServiceMock.ListProfilesFunc: method is nil but profileService.ListProfiles was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Limit  int
		Offset int
	}{Ctx: ctx, Limit: limit, Offset: offset}
	mock.lockListProfiles.Lock()
	mock.calls.ListProfiles = append(mock.calls.ListProfiles, callInfo)
	mock.lockListProfiles.Unlock()
	return mock.ListProfilesFunc(ctx, limit, offset)
}

func (mock *profileServiceMock) ListProfilesCalls() []struct {
	Ctx    context.Context
	Limit  int
	Offset int
} {
	mock.lockListProfiles.RLock()
	calls := mock.calls.ListProfiles
	mock.lockListProfiles.RUnlock()
	return calls
}

func (mock *profileServiceMock) SetRole(ctx context.Context, targetUserID uuid.UUID, role domain.Role) (*domain.Profile, error) {
	if mock.SetRoleFunc == nil {
		panic("profileServiceMock.SetRoleFunc: method is nil but profileService.SetRole was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		TargetUserID uuid.UUID
		Role         domain.Role
	}{Ctx: ctx, TargetUserID: targetUserID, Role: role}
	mock.lockSetRole.Lock()
	mock.calls.SetRole = append(mock.calls.SetRole, callInfo)
	mock.lockSetRole.Unlock()
	return mock.SetRoleFunc(ctx, targetUserID, role)
}

func (mock *profileServiceMock) SetRoleCalls() []struct {
	Ctx          context.Context
	TargetUserID uuid.UUID
	Role         domain.Role
} {
	mock.lockSetRole.RLock()
	calls := mock.calls.SetRole
	mock.lockSetRole.RUnlock()
	return calls
}
