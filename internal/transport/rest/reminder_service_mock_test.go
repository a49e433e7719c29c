package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/tasktracker-backend/internal/domain"
	"github.com/heartmarshall/tasktracker-backend/internal/service/reminder"
)

var _ reminderService = &reminderServiceMock{}

type reminderServiceMock struct {
	GetSettingsFunc    func(ctx context.Context) (*domain.ReminderSchedule, error)
	SaveSettingsFunc   func(ctx context.Context, input reminder.SaveSettingsInput) (*domain.ReminderSchedule, error)
	DeleteSettingsFunc func(ctx context.Context) error
	TimezonesFunc      func() []string

	calls struct {
		GetSettings []struct {
			Ctx context.Context
		}
		SaveSettings []struct {
			Ctx   context.Context
			Input reminder.SaveSettingsInput
		}
		DeleteSettings []struct {
			Ctx context.Context
		}
		Timezones []struct{}
	}
	lockGetSettings    sync.RWMutex
	lockSaveSettings   sync.RWMutex
	lockDeleteSettings sync.RWMutex
	lockTimezones      sync.RWMutex
}

func (mock *reminderServiceMock) GetSettings(ctx context.Context) (*domain.ReminderSchedule, error) {
	if mock.GetSettingsFunc == nil {
		panic("reminderServiceMock.GetSettingsFunc: method is nil but reminderService.GetSettings was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockGetSettings.Lock()
	mock.calls.GetSettings = append(mock.calls.GetSettings, callInfo)
	mock.lockGetSettings.Unlock()
	return mock.GetSettingsFunc(ctx)
}

func (mock *reminderServiceMock) GetSettingsCalls() []struct {
	Ctx context.Context
} {
	mock.lockGetSettings.RLock()
	calls := mock.calls.GetSettings
	mock.lockGetSettings.RUnlock()
	return calls
}

func (mock *reminderServiceMock) SaveSettings(ctx context.Context, input reminder.SaveSettingsInput) (*domain.ReminderSchedule, error) {
	if mock.SaveSettingsFunc == nil {
		panic("reminderServiceMock.SaveSettingsFunc: method is nil but reminderService.SaveSettings was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input reminder.SaveSettingsInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockSaveSettings.Lock()
	mock.calls.SaveSettings = append(mock.calls.SaveSettings, callInfo)
	mock.lockSaveSettings.Unlock()
	return mock.SaveSettingsFunc(ctx, input)
}

func (mock *reminderServiceMock) SaveSettingsCalls() []struct {
	Ctx   context.Context
	Input reminder.SaveSettingsInput
} {
	mock.lockSaveSettings.RLock()
	calls := mock.calls.SaveSettings
	mock.lockSaveSettings.RUnlock()
	return calls
}

func (mock *reminderServiceMock) DeleteSettings(ctx context.Context) error {
	if mock.DeleteSettingsFunc == nil {
		panic("reminderServiceMock.DeleteSettingsFunc: method is nil but reminderService.DeleteSettings was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockDeleteSettings.Lock()
	mock.calls.DeleteSettings = append(mock.calls.DeleteSettings, callInfo)
	mock.lockDeleteSettings.Unlock()
	return mock.DeleteSettingsFunc(ctx)
}

func (mock *reminderServiceMock) DeleteSettingsCalls() []struct {
	Ctx context.Context
} {
	mock.lockDeleteSettings.RLock()
	calls := mock.calls.DeleteSettings
	mock.lockDeleteSettings.RUnlock()
	return calls
}

func (mock *reminderServiceMock) Timezones() []string {
	if mock.TimezonesFunc == nil {
		panic("reminderServiceMock.TimezonesFunc: method is nil but reminderService.Timezones was just called")
	}
	mock.lockTimezones.Lock()
	mock.calls.Timezones = append(mock.calls.Timezones, struct{}{})
	mock.lockTimezones.Unlock()
	return mock.TimezonesFunc()
}

func (mock *reminderServiceMock) TimezonesCalls() []struct{} {
	mock.lockTimezones.RLock()
	calls := mock.calls.Timezones
	mock.lockTimezones.RUnlock()
	return calls
}
