package entry

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/tasktracker-backend/internal/domain"
)

var _ entryRepo = &entryRepoMock{}

type entryRepoMock struct {
	CreateFunc     func(ctx context.Context, e *domain.Entry) (*domain.Entry, error)
	GetByIDFunc    func(ctx context.Context, userID uuid.UUID, entryID uuid.UUID) (*domain.Entry, error)
	ListByListFunc func(ctx context.Context, userID uuid.UUID, listID uuid.UUID) ([]*domain.Entry, error)
	MoveFunc       func(ctx context.Context, userID uuid.UUID, entryID uuid.UUID, categoryID uuid.UUID) (*domain.Entry, error)
	DeleteFunc     func(ctx context.Context, userID uuid.UUID, entryID uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx context.Context
			E   *domain.Entry
		}
		GetByID []struct {
			Ctx     context.Context
			UserID  uuid.UUID
			EntryID uuid.UUID
		}
		ListByList []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ListID uuid.UUID
		}
		Move []struct {
			Ctx        context.Context
			UserID     uuid.UUID
			EntryID    uuid.UUID
			CategoryID uuid.UUID
		}
		Delete []struct {
			Ctx     context.Context
			UserID  uuid.UUID
			EntryID uuid.UUID
		}
	}
	lockCreate     sync.RWMutex
	lockGetByID    sync.RWMutex
	lockListByList sync.RWMutex
	lockMove       sync.RWMutex
	lockDelete     sync.RWMutex
}

func (mock *entryRepoMock) Create(ctx context.Context, e *domain.Entry) (*domain.Entry, error) {
	if mock.CreateFunc == nil {
		panic("entryRepoMock.CreateFunc: method is nil but entryRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   *domain.Entry
	}{
		Ctx: ctx,
		E:   e,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, e)
}

func (mock *entryRepoMock) CreateCalls() []struct {
	Ctx context.Context
	E   *domain.Entry
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *entryRepoMock) GetByID(ctx context.Context, userID uuid.UUID, entryID uuid.UUID) (*domain.Entry, error) {
	if mock.GetByIDFunc == nil {
		panic("entryRepoMock.GetByIDFunc: method is nil but entryRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		UserID  uuid.UUID
		EntryID uuid.UUID
	}{
		Ctx:     ctx,
		UserID:  userID,
		EntryID: entryID,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, entryID)
}

func (mock *entryRepoMock) GetByIDCalls() []struct {
	Ctx     context.Context
	UserID  uuid.UUID
	EntryID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
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

func (mock *entryRepoMock) Move(ctx context.Context, userID uuid.UUID, entryID uuid.UUID, categoryID uuid.UUID) (*domain.Entry, error) {
	if mock.MoveFunc == nil {
		panic("entryRepoMock.MoveFunc: method is nil but entryRepo.Move was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		UserID     uuid.UUID
		EntryID    uuid.UUID
		CategoryID uuid.UUID
	}{
		Ctx:        ctx,
		UserID:     userID,
		EntryID:    entryID,
		CategoryID: categoryID,
	}
	mock.lockMove.Lock()
	mock.calls.Move = append(mock.calls.Move, callInfo)
	mock.lockMove.Unlock()
	return mock.MoveFunc(ctx, userID, entryID, categoryID)
}

func (mock *entryRepoMock) MoveCalls() []struct {
	Ctx        context.Context
	UserID     uuid.UUID
	EntryID    uuid.UUID
	CategoryID uuid.UUID
} {
	mock.lockMove.RLock()
	calls := mock.calls.Move
	mock.lockMove.RUnlock()
	return calls
}

func (mock *entryRepoMock) Delete(ctx context.Context, userID uuid.UUID, entryID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("entryRepoMock.DeleteFunc: method is nil but entryRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		UserID  uuid.UUID
		EntryID uuid.UUID
	}{
		Ctx:     ctx,
		UserID:  userID,
		EntryID: entryID,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, entryID)
}

func (mock *entryRepoMock) DeleteCalls() []struct {
	Ctx     context.Context
	UserID  uuid.UUID
	EntryID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
