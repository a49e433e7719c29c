package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/tasktracker-backend/internal/domain"
	"github.com/heartmarshall/tasktracker-backend/internal/service/entry"
)

var _ entryService = &entryServiceMock{}

type entryServiceMock struct {
	ListEntriesFunc func(ctx context.Context, listID uuid.UUID) ([]*domain.Entry, error)
	CreateEntryFunc func(ctx context.Context, input entry.CreateEntryInput) (*domain.Entry, error)
	MoveEntryFunc   func(ctx context.Context, input entry.MoveEntryInput) (*domain.Entry, error)
	DeleteEntryFunc func(ctx context.Context, entryID uuid.UUID) error

	calls struct {
		ListEntries []struct {
			Ctx    context.Context
			ListID uuid.UUID
		}
		CreateEntry []struct {
			Ctx   context.Context
			Input entry.CreateEntryInput
		}
		MoveEntry []struct {
			Ctx   context.Context
			Input entry.MoveEntryInput
		}
		DeleteEntry []struct {
			Ctx     context.Context
			EntryID uuid.UUID
		}
	}
	lockListEntries sync.RWMutex
	lockCreateEntry sync.RWMutex
	lockMoveEntry   sync.RWMutex
	lockDeleteEntry sync.RWMutex
}

func (mock *entryServiceMock) ListEntries(ctx context.Context, listID uuid.UUID) ([]*domain.Entry, error) {
	if mock.ListEntriesFunc == nil {
		panic("entryServiceMock.ListEntriesFunc: method is nil but entryService.ListEntries was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ListID uuid.UUID
	}{
		Ctx:    ctx,
		ListID: listID,
	}
	mock.lockListEntries.Lock()
	mock.calls.ListEntries = append(mock.calls.ListEntries, callInfo)
	mock.lockListEntries.Unlock()
	return mock.ListEntriesFunc(ctx, listID)
}

func (mock *entryServiceMock) ListEntriesCalls() []struct {
	Ctx    context.Context
	ListID uuid.UUID
} {
	mock.lockListEntries.RLock()
	calls := mock.calls.ListEntries
	mock.lockListEntries.RUnlock()
	return calls
}

func (mock *entryServiceMock) CreateEntry(ctx context.Context, input entry.CreateEntryInput) (*domain.Entry, error) {
	if mock.CreateEntryFunc == nil {
		panic("entryServiceMock.CreateEntryFunc: method is nil but entryService.CreateEntry was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input entry.CreateEntryInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreateEntry.Lock()
	mock.calls.CreateEntry = append(mock.calls.CreateEntry, callInfo)
	mock.lockCreateEntry.Unlock()
	return mock.CreateEntryFunc(ctx, input)
}

func (mock *entryServiceMock) CreateEntryCalls() []struct {
	Ctx   context.Context
	Input entry.CreateEntryInput
} {
	mock.lockCreateEntry.RLock()
	calls := mock.calls.CreateEntry
	mock.lockCreateEntry.RUnlock()
	return calls
}

func (mock *entryServiceMock) MoveEntry(ctx context.Context, input entry.MoveEntryInput) (*domain.Entry, error) {
	if mock.MoveEntryFunc == nil {
		panic("entryServiceMock.MoveEntryFunc: method is nil but entryService.MoveEntry was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input entry.MoveEntryInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockMoveEntry.Lock()
	mock.calls.MoveEntry = append(mock.calls.MoveEntry, callInfo)
	mock.lockMoveEntry.Unlock()
	return mock.MoveEntryFunc(ctx, input)
}

func (mock *entryServiceMock) MoveEntryCalls() []struct {
	Ctx   context.Context
	Input entry.MoveEntryInput
} {
	mock.lockMoveEntry.RLock()
	calls := mock.calls.MoveEntry
	mock.lockMoveEntry.RUnlock()
	return calls
}

func (mock *entryServiceMock) DeleteEntry(ctx context.Context, entryID uuid.UUID) error {
	if mock.DeleteEntryFunc == nil {
		panic("entryServiceMock.DeleteEntryFunc: method is nil but entryService.DeleteEntry was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		EntryID uuid.UUID
	}{
		Ctx:     ctx,
		EntryID: entryID,
	}
	mock.lockDeleteEntry.Lock()
	mock.calls.DeleteEntry = append(mock.calls.DeleteEntry, callInfo)
	mock.lockDeleteEntry.Unlock()
	return mock.DeleteEntryFunc(ctx, entryID)
}

func (mock *entryServiceMock) DeleteEntryCalls() []struct {
	Ctx     context.Context
	EntryID uuid.UUID
} {
	mock.lockDeleteEntry.RLock()
	calls := mock.calls.DeleteEntry
	mock.lockDeleteEntry.RUnlock()
	return calls
}
