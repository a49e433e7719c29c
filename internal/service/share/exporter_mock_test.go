package share

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ exporter = &exporterMock{}

type exporterMock struct {
	HTMLFunc func(ctx context.Context, listID uuid.UUID) (string, error)

	calls struct {
		HTML []struct {
			Ctx    context.Context
			ListID uuid.UUID
		}
	}
	lockHTML sync.RWMutex
}

func (mock *exporterMock) HTML(ctx context.Context, listID uuid.UUID) (string, error) {
	if mock.HTMLFunc == nil {
		panic("exporterMock.HTMLFunc: method is nil but exporter.HTML was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ListID uuid.UUID
	}{
		Ctx:    ctx,
		ListID: listID,
	}
	mock.lockHTML.Lock()
	mock.calls.HTML = append(mock.calls.HTML, callInfo)
	mock.lockHTML.Unlock()
	return mock.HTMLFunc(ctx, listID)
}

func (mock *exporterMock) HTMLCalls() []struct {
	Ctx    context.Context
	ListID uuid.UUID
} {
	mock.lockHTML.RLock()
	calls := mock.calls.HTML
	mock.lockHTML.RUnlock()
	return calls
}
