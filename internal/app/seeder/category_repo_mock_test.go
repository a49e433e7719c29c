package seeder

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/tasktracker-backend/internal/domain"
)

var _ categoryRepo = &categoryRepoMock{}

type categoryRepoMock struct {
	GetByNameFunc func(ctx context.Context, userID uuid.UUID, listID uuid.UUID, name string) (*domain.Category, error)
	CreateFunc    func(ctx context.Context, userID uuid.UUID, listID uuid.UUID, name string) (*domain.Category, error)

	calls struct {
		GetByName []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ListID uuid.UUID
			Name   string
		}
		Create []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ListID uuid.UUID
			Name   string
		}
	}
	lockGetByName sync.RWMutex
	lockCreate    sync.RWMutex
}

func (mock *categoryRepoMock) GetByName(ctx context.Context, userID uuid.UUID, listID uuid.UUID, name string) (*domain.Category, error) {
	if mock.GetByNameFunc == nil {
		panic("categoryRepoMock.GetByNameFunc: method is nil but categoryRepo.GetByName was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		ListID uuid.UUID
		Name   string
	}{
		Ctx:    ctx,
		UserID: userID,
		ListID: listID,
		Name:   name,
	}
	mock.lockGetByName.Lock()
	mock.calls.GetByName = append(mock.calls.GetByName, callInfo)
	mock.lockGetByName.Unlock()
	return mock.GetByNameFunc(ctx, userID, listID, name)
}

func (mock *categoryRepoMock) GetByNameCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	ListID uuid.UUID
	Name   string
} {
	mock.lockGetByName.RLock()
	calls := mock.calls.GetByName
	mock.lockGetByName.RUnlock()
	return calls
}

func (mock *categoryRepoMock) Create(ctx context.Context, userID uuid.UUID, listID uuid.UUID, name string) (*domain.Category, error) {
	if mock.CreateFunc == nil {
		panic("categoryRepoMock.CreateFunc: method is nil but categoryRepo.Create was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		ListID uuid.UUID
		Name   string
	}{
		Ctx:    ctx,
		UserID: userID,
		ListID: listID,
		Name:   name,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, userID, listID, name)
}

func (mock *categoryRepoMock) CreateCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	ListID uuid.UUID
	Name   string
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}
