package rest

import (
	"context"
	"github.com/cpdtrack/cpd-backend/internal/service/report"
	"sync"
)

var _ reportService = &reportServiceMock{}

type reportServiceMock struct {
	GetReportFunc func(ctx context.Context, year int) (*report.Report, error)
	RenderPDFFunc func(ctx context.Context, year int) ([]byte, error)

	calls struct {
		GetReport []struct {
			Ctx  context.Context
			Year int
		}
		RenderPDF []struct {
			Ctx  context.Context
			Year int
		}
	}
	lockGetReport sync.RWMutex
	lockRenderPDF sync.RWMutex
}

func (mock *reportServiceMock) GetReport(ctx context.Context, year int) (*report.Report, error) {
	if mock.GetReportFunc == nil {
		panic("reportServiceMock.GetReportFunc: method is nil but reportService.GetReport was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Year int
	}{Ctx: ctx, Year: year}
	mock.lockGetReport.Lock()
	mock.calls.GetReport = append(mock.calls.GetReport, callInfo)
	mock.lockGetReport.Unlock()
	return mock.GetReportFunc(ctx, year)
}

func (mock *reportServiceMock) GetReportCalls() []struct {
	Ctx  context.Context
	Year int
} {
	mock.lockGetReport.RLock()
	calls := mock.calls.GetReport
	mock.lockGetReport.RUnlock()
	return calls
}

func (mock *reportServiceMock) RenderPDF(ctx context.Context, year int) ([]byte, error) {
	if mock.RenderPDFFunc == nil {
		panic("reportServiceMock.RenderPDFFunc: method is nil but reportService.RenderPDF was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Year int
	}{Ctx: ctx, Year: year}
	mock.lockRenderPDF.Lock()
	mock.calls.RenderPDF = append(mock.calls.RenderPDF, callInfo)
	mock.lockRenderPDF.Unlock()
	return mock.RenderPDFFunc(ctx, year)
}

func (mock *reportServiceMock) RenderPDFCalls() []struct {
	Ctx  context.Context
	Year int
} {
	mock.lockRenderPDF.RLock()
	calls := mock.calls.RenderPDF
	mock.lockRenderPDF.RUnlock()
	return calls
}
