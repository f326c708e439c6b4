package subscription

import (
	"context"
	"github.com/cpdtrack/cpd-backend/internal/domain"
	"sync"
)

var _ billingClient = &billingClientMock{}

type billingClientMock struct {
	ParseWebhookFunc func(ctx context.Context, payload []byte, signature string) (domain.BillingEvent, error)
	FetchLatestFunc  func(ctx context.Context, customerID string) (*domain.Subscription, error)

	calls struct {
		ParseWebhook []struct {
			Ctx       context.Context
			Payload   []byte
			Signature string
		}
		FetchLatest []struct {
			Ctx        context.Context
			CustomerID string
		}
	}
	lockParseWebhook sync.RWMutex
	lockFetchLatest  sync.RWMutex
}

func (mock *billingClientMock) ParseWebhook(ctx context.Context, payload []byte, signature string) (domain.BillingEvent, error) {
	if mock.ParseWebhookFunc == nil {
		panic("billingClientMock.ParseWebhookFunc: method is nil but billingClient.ParseWebhook was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Payload   []byte
		Signature string
	}{Ctx: ctx, Payload: payload, Signature: signature}
	mock.lockParseWebhook.Lock()
	mock.calls.ParseWebhook = append(mock.calls.ParseWebhook, callInfo)
	mock.lockParseWebhook.Unlock()
	return mock.ParseWebhookFunc(ctx, payload, signature)
}

func (mock *billingClientMock) ParseWebhookCalls() []struct {
	Ctx       context.Context
	Payload   []byte
	Signature string
} {
	mock.lockParseWebhook.RLock()
	calls := mock.calls.ParseWebhook
	mock.lockParseWebhook.RUnlock()
	return calls
}

func (mock *billingClientMock) FetchLatest(ctx context.Context, customerID string) (*domain.Subscription, error) {
	if mock.FetchLatestFunc == nil {
		panic("billingClientMock.FetchLatestFunc: method is nil but billingClient.FetchLatest was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		CustomerID string
	}{Ctx: ctx, CustomerID: customerID}
	mock.lockFetchLatest.Lock()
	mock.calls.FetchLatest = append(mock.calls.FetchLatest, callInfo)
	mock.lockFetchLatest.Unlock()
	return mock.FetchLatestFunc(ctx, customerID)
}

func (mock *billingClientMock) FetchLatestCalls() []struct {
	Ctx        context.Context
	CustomerID string
} {
	mock.lockFetchLatest.RLock()
	calls := mock.calls.FetchLatest
	mock.lockFetchLatest.RUnlock()
	return calls
}
