package activity

import (
	"context"
	"io"
	"sync"
)

var _ evidenceStore = &evidenceStoreMock{}

type evidenceStoreMock struct {
	PutFunc func(ctx context.Context, key string, contentType string, body io.Reader) (string, error)

	calls struct {
		Put []struct {
			Ctx         context.Context
			Key         string
			ContentType string
			Body        io.Reader
		}
	}
	lockPut sync.RWMutex
}

func (mock *evidenceStoreMock) Put(ctx context.Context, key string, contentType string, body io.Reader) (string, error) {
	if mock.PutFunc == nil {
		panic("evidenceStoreMock.PutFunc: method is nil but evidenceStore.Put was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		Key         string
		ContentType string
		Body        io.Reader
	}{Ctx: ctx, Key: key, ContentType: contentType, Body: body}
	mock.lockPut.Lock()
	mock.calls.Put = append(mock.calls.Put, callInfo)
	mock.lockPut.Unlock()
	return mock.PutFunc(ctx, key, contentType, body)
}

func (mock *evidenceStoreMock) PutCalls() []struct {
	Ctx         context.Context
	Key         string
	ContentType string
	Body        io.Reader
} {
	mock.lockPut.RLock()
	calls := mock.calls.Put
	mock.lockPut.RUnlock()
	return calls
}
