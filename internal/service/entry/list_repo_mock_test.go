package entry

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/tasktracker-backend/internal/domain"
)

var _ listRepo = &listRepoMock{}

type listRepoMock struct {
	GetByIDFunc func(ctx context.Context, userID uuid.UUID, listID uuid.UUID) (*domain.List, error)

	calls struct {
		GetByID []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ListID uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *listRepoMock) GetByID(ctx context.Context, userID uuid.UUID, listID uuid.UUID) (*domain.List, error) {
	if mock.GetByIDFunc == nil {
		panic("listRepoMock.GetByIDFunc: method is nil but listRepo.GetByID was just called")
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
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, listID)
}

func (mock *listRepoMock) GetByIDCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	ListID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}
