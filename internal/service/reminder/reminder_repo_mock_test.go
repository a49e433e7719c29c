package reminder

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/tasktracker-backend/internal/domain"
)

var _ reminderRepo = &reminderRepoMock{}

type reminderRepoMock struct {
	GetByUserFunc   func(ctx context.Context, userID uuid.UUID) (*domain.ReminderSchedule, error)
	ListActiveFunc  func(ctx context.Context) ([]*domain.ReminderSchedule, []error, error)
	UpsertFunc      func(ctx context.Context, s *domain.ReminderSchedule) (*domain.ReminderSchedule, error)
	DeleteFunc      func(ctx context.Context, userID uuid.UUID) error
	ClaimSendFunc   func(ctx context.Context, id uuid.UUID, prev *time.Time, now time.Time) (bool, error)
	ReleaseSendFunc func(ctx context.Context, id uuid.UUID, now time.Time, prev *time.Time) error

	calls struct {
		GetByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		ListActive []struct {
			Ctx context.Context
		}
		Upsert []struct {
			Ctx context.Context
			S   *domain.ReminderSchedule
		}
		Delete []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		ClaimSend []struct {
			Ctx  context.Context
			ID   uuid.UUID
			Prev *time.Time
			Now  time.Time
		}
		ReleaseSend []struct {
			Ctx  context.Context
			ID   uuid.UUID
			Now  time.Time
			Prev *time.Time
		}
	}
	lockGetByUser   sync.RWMutex
	lockListActive  sync.RWMutex
	lockUpsert      sync.RWMutex
	lockDelete      sync.RWMutex
	lockClaimSend   sync.RWMutex
	lockReleaseSend sync.RWMutex
}

func (mock *reminderRepoMock) GetByUser(ctx context.Context, userID uuid.UUID) (*domain.ReminderSchedule, error) {
	if mock.GetByUserFunc == nil {
		panic("reminderRepoMock.GetByUserFunc: method is nil but reminderRepo.GetByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockGetByUser.Lock()
	mock.calls.GetByUser = append(mock.calls.GetByUser, callInfo)
	mock.lockGetByUser.Unlock()
	return mock.GetByUserFunc(ctx, userID)
}

func (mock *reminderRepoMock) GetByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockGetByUser.RLock()
	calls := mock.calls.GetByUser
	mock.lockGetByUser.RUnlock()
	return calls
}

func (mock *reminderRepoMock) ListActive(ctx context.Context) ([]*domain.ReminderSchedule, []error, error) {
	if mock.ListActiveFunc == nil {
		panic("reminderRepoMock.ListActiveFunc: method is nil but reminderRepo.ListActive was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListActive.Lock()
	mock.calls.ListActive = append(mock.calls.ListActive, callInfo)
	mock.lockListActive.Unlock()
	return mock.ListActiveFunc(ctx)
}

func (mock *reminderRepoMock) ListActiveCalls() []struct {
	Ctx context.Context
} {
	mock.lockListActive.RLock()
	calls := mock.calls.ListActive
	mock.lockListActive.RUnlock()
	return calls
}

func (mock *reminderRepoMock) Upsert(ctx context.Context, s *domain.ReminderSchedule) (*domain.ReminderSchedule, error) {
	if mock.UpsertFunc == nil {
		panic("reminderRepoMock.UpsertFunc: method is nil but reminderRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   *domain.ReminderSchedule
	}{
		Ctx: ctx,
		S:   s,
	}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, s)
}

func (mock *reminderRepoMock) UpsertCalls() []struct {
	Ctx context.Context
	S   *domain.ReminderSchedule
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

func (mock *reminderRepoMock) Delete(ctx context.Context, userID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("reminderRepoMock.DeleteFunc: method is nil but reminderRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID)
}

func (mock *reminderRepoMock) DeleteCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *reminderRepoMock) ClaimSend(ctx context.Context, id uuid.UUID, prev *time.Time, now time.Time) (bool, error) {
	if mock.ClaimSendFunc == nil {
		panic("reminderRepoMock.ClaimSendFunc: method is nil but reminderRepo.ClaimSend was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		ID   uuid.UUID
		Prev *time.Time
		Now  time.Time
	}{
		Ctx:  ctx,
		ID:   id,
		Prev: prev,
		Now:  now,
	}
	mock.lockClaimSend.Lock()
	mock.calls.ClaimSend = append(mock.calls.ClaimSend, callInfo)
	mock.lockClaimSend.Unlock()
	return mock.ClaimSendFunc(ctx, id, prev, now)
}

func (mock *reminderRepoMock) ClaimSendCalls() []struct {
	Ctx  context.Context
	ID   uuid.UUID
	Prev *time.Time
	Now  time.Time
} {
	mock.lockClaimSend.RLock()
	calls := mock.calls.ClaimSend
	mock.lockClaimSend.RUnlock()
	return calls
}

func (mock *reminderRepoMock) ReleaseSend(ctx context.Context, id uuid.UUID, now time.Time, prev *time.Time) error {
	if mock.ReleaseSendFunc == nil {
		panic("reminderRepoMock.ReleaseSendFunc: method is nil but reminderRepo.ReleaseSend was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		ID   uuid.UUID
		Now  time.Time
		Prev *time.Time
	}{
		Ctx:  ctx,
		ID:   id,
		Now:  now,
		Prev: prev,
	}
	mock.lockReleaseSend.Lock()
	mock.calls.ReleaseSend = append(mock.calls.ReleaseSend, callInfo)
	mock.lockReleaseSend.Unlock()
	return mock.ReleaseSendFunc(ctx, id, now, prev)
}

func (mock *reminderRepoMock) ReleaseSendCalls() []struct {
	Ctx  context.Context
	ID   uuid.UUID
	Now  time.Time
	Prev *time.Time
} {
	mock.lockReleaseSend.RLock()
	calls := mock.calls.ReleaseSend
	mock.lockReleaseSend.RUnlock()
	return calls
}
