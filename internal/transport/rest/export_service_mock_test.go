package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ exportService = &exportServiceMock{}

type exportServiceMock struct {
	MarkdownFunc func(ctx context.Context, listID uuid.UUID) (string, error)

	calls struct {
		Markdown []struct {
			Ctx    context.Context
			ListID uuid.UUID
		}
	}
	lockMarkdown sync.RWMutex
}

func (mock *exportServiceMock) Markdown(ctx context.Context, listID uuid.UUID) (string, error) {
	if mock.MarkdownFunc == nil {
		panic("exportServiceMock.MarkdownFunc: method is nil but exportService.Markdown was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ListID uuid.UUID
	}{
		Ctx:    ctx,
		ListID: listID,
	}
	mock.lockMarkdown.Lock()
	mock.calls.Markdown = append(mock.calls.Markdown, callInfo)
	mock.lockMarkdown.Unlock()
	return mock.MarkdownFunc(ctx, listID)
}

func (mock *exportServiceMock) MarkdownCalls() []struct {
	Ctx    context.Context
	ListID uuid.UUID
} {
	mock.lockMarkdown.RLock()
	calls := mock.calls.Markdown
	mock.lockMarkdown.RUnlock()
	return calls
}
