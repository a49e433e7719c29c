package export

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/tasktracker-backend/internal/domain"
)

var _ entryRepo = &entryRepoMock{}

type entryRepoMock struct {
	ListByListFunc func(ctx context.Context, userID uuid.UUID, listID uuid.UUID) ([]*domain.Entry, error)

	calls struct {
		ListByList []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ListID uuid.UUID
		}
	}
	lockListByList sync.RWMutex
}

func (mock *entryRepoMock) ListByList(ctx context.Context, userID uuid.UUID, listID uuid.UUID) ([]*domain.Entry, error) {
	if mock.ListByListFunc == nil {
		panic("entryRepoMock.ListByListFunc: method is nil but entryRepo.ListByList was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		ListID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
		ListID: listID,
	}
	mock.lockListByList.Lock()
	mock.calls.ListByList = append(mock.calls.ListByList, callInfo)
	mock.lockListByList.Unlock()
	return mock.ListByListFunc(ctx, userID, listID)
}

func (mock *entryRepoMock) ListByListCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	ListID uuid.UUID
} {
	mock.lockListByList.RLock()
	calls := mock.calls.ListByList
	mock.lockListByList.RUnlock()
	return calls
}
