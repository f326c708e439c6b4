package rest

import (
	"context"
	"github.com/cpdtrack/cpd-backend/internal/service/dashboard"
	"sync"
)

var _ dashboardService = &dashboardServiceMock{}

type dashboardServiceMock struct {
	GetDashboardFunc func(ctx context.Context, year int) (dashboard.Dashboard, error)

	calls struct {
		GetDashboard []struct {
			Ctx  context.Context
			Year int
		}
	}
	lockGetDashboard sync.RWMutex
}

func (mock *dashboardServiceMock) GetDashboard(ctx context.Context, year int) (dashboard.Dashboard, error) {
	if mock.GetDashboardFunc == nil {
		panic("dashboardServiceMock.GetDashboardFunc: method is nil but dashboardService.GetDashboard was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Year int
	}{Ctx: ctx, Year: year}
	mock.lockGetDashboard.Lock()
	mock.calls.GetDashboard = append(mock.calls.GetDashboard, callInfo)
	mock.lockGetDashboard.Unlock()
	return mock.GetDashboardFunc(ctx, year)
}

func (mock *dashboardServiceMock) GetDashboardCalls() []struct {
	Ctx  context.Context
	Year int
} {
	mock.lockGetDashboard.RLock()
	calls := mock.calls.GetDashboard
	mock.lockGetDashboard.RUnlock()
	return calls
}
