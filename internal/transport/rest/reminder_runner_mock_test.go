package rest

import (
	"context"
	"sync"
	"time"

	"github.com/heartmarshall/tasktracker-backend/internal/service/reminder"
)

var _ reminderRunner = &reminderRunnerMock{}

type reminderRunnerMock struct {
	RunFunc func(ctx context.Context, now time.Time) (reminder.Report, error)

	calls struct {
		Run []struct {
			Ctx context.Context
			Now time.Time
		}
	}
	lockRun sync.RWMutex
}

func (mock *reminderRunnerMock) Run(ctx context.Context, now time.Time) (reminder.Report, error) {
	if mock.RunFunc == nil {
		panic("reminderRunnerMock.RunFunc: method is nil but reminderRunner.Run was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Now time.Time
	}{
		Ctx: ctx,
		Now: now,
	}
	mock.lockRun.Lock()
	mock.calls.Run = append(mock.calls.Run, callInfo)
	mock.lockRun.Unlock()
	return mock.RunFunc(ctx, now)
}

func (mock *reminderRunnerMock) RunCalls() []struct {
	Ctx context.Context
	Now time.Time
} {
	mock.lockRun.RLock()
	calls := mock.calls.Run
	mock.lockRun.RUnlock()
	return calls
}
