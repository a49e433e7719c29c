package auth

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/tasktracker-backend/internal/domain"
)

var _ listRepo = &listRepoMock{}

type listRepoMock struct {
	CreateFunc func(ctx context.Context, userID uuid.UUID, name string) (*domain.List, error)

	calls struct {
		Create []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Name   string
		}
	}
	lockCreate sync.RWMutex
}

func (mock *listRepoMock) Create(ctx context.Context, userID uuid.UUID, name string) (*domain.List, error) {
	if mock.CreateFunc == nil {
		panic("listRepoMock.CreateFunc: method is nil but listRepo.Create was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Name   string
	}{
		Ctx:    ctx,
		UserID: userID,
		Name:   name,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, userID, name)
}

func (mock *listRepoMock) CreateCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Name   string
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}
