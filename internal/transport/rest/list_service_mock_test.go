package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/tasktracker-backend/internal/domain"
	"github.com/heartmarshall/tasktracker-backend/internal/service/list"
)

var _ listService = &listServiceMock{}

type listServiceMock struct {
	ListListsFunc  func(ctx context.Context) ([]*domain.List, error)
	CreateListFunc func(ctx context.Context, input list.CreateListInput) (*domain.List, error)
	RenameListFunc func(ctx context.Context, input list.RenameListInput) (*domain.List, error)
	DeleteListFunc func(ctx context.Context, listID uuid.UUID) error

	calls struct {
		ListLists []struct {
			Ctx context.Context
		}
		CreateList []struct {
			Ctx   context.Context
			Input list.CreateListInput
		}
		RenameList []struct {
			Ctx   context.Context
			Input list.RenameListInput
		}
		DeleteList []struct {
			Ctx    context.Context
			ListID uuid.UUID
		}
	}
	lockListLists  sync.RWMutex
	lockCreateList sync.RWMutex
	lockRenameList sync.RWMutex
	lockDeleteList sync.RWMutex
}

func (mock *listServiceMock) ListLists(ctx context.Context) ([]*domain.List, error) {
	if mock.ListListsFunc == nil {
		panic("listServiceMock.ListListsFunc: method is nil but listService.ListLists was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListLists.Lock()
	mock.calls.ListLists = append(mock.calls.ListLists, callInfo)
	mock.lockListLists.Unlock()
	return mock.ListListsFunc(ctx)
}

func (mock *listServiceMock) ListListsCalls() []struct {
	Ctx context.Context
} {
	mock.lockListLists.RLock()
	calls := mock.calls.ListLists
	mock.lockListLists.RUnlock()
	return calls
}

func (mock *listServiceMock) CreateList(ctx context.Context, input list.CreateListInput) (*domain.List, error) {
	if mock.CreateListFunc == nil {
		panic("listServiceMock.CreateListFunc: method is nil but listService.CreateList was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input list.CreateListInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreateList.Lock()
	mock.calls.CreateList = append(mock.calls.CreateList, callInfo)
	mock.lockCreateList.Unlock()
	return mock.CreateListFunc(ctx, input)
}

func (mock *listServiceMock) CreateListCalls() []struct {
	Ctx   context.Context
	Input list.CreateListInput
} {
	mock.lockCreateList.RLock()
	calls := mock.calls.CreateList
	mock.lockCreateList.RUnlock()
	return calls
}

func (mock *listServiceMock) RenameList(ctx context.Context, input list.RenameListInput) (*domain.List, error) {
	if mock.RenameListFunc == nil {
		panic("listServiceMock.RenameListFunc: method is nil but listService.RenameList was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input list.RenameListInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockRenameList.Lock()
	mock.calls.RenameList = append(mock.calls.RenameList, callInfo)
	mock.lockRenameList.Unlock()
	return mock.RenameListFunc(ctx, input)
}

func (mock *listServiceMock) RenameListCalls() []struct {
	Ctx   context.Context
	Input list.RenameListInput
} {
	mock.lockRenameList.RLock()
	calls := mock.calls.RenameList
	mock.lockRenameList.RUnlock()
	return calls
}

func (mock *listServiceMock) DeleteList(ctx context.Context, listID uuid.UUID) error {
	if mock.DeleteListFunc == nil {
		panic("listServiceMock.DeleteListFunc: method is nil but listService.DeleteList was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ListID uuid.UUID
	}{
		Ctx:    ctx,
		ListID: listID,
	}
	mock.lockDeleteList.Lock()
	mock.calls.DeleteList = append(mock.calls.DeleteList, callInfo)
	mock.lockDeleteList.Unlock()
	return mock.DeleteListFunc(ctx, listID)
}

func (mock *listServiceMock) DeleteListCalls() []struct {
	Ctx    context.Context
	ListID uuid.UUID
} {
	mock.lockDeleteList.RLock()
	calls := mock.calls.DeleteList
	mock.lockDeleteList.RUnlock()
	return calls
}
