package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/tasktracker-backend/internal/domain"
	"github.com/heartmarshall/tasktracker-backend/internal/service/user"
)

var _ profileService = &profileServiceMock{}

type profileServiceMock struct {
	GetProfileFunc        func(ctx context.Context) (*domain.User, error)
	UpdateDisplayNameFunc func(ctx context.Context, input user.UpdateDisplayNameInput) (*domain.User, error)

	calls struct {
		GetProfile []struct {
			Ctx context.Context
		}
		UpdateDisplayName []struct {
			Ctx   context.Context
			Input user.UpdateDisplayNameInput
		}
	}
	lockGetProfile        sync.RWMutex
	lockUpdateDisplayName sync.RWMutex
}

func (mock *profileServiceMock) GetProfile(ctx context.Context) (*domain.User, error) {
	if mock.GetProfileFunc == nil {
		panic("profileServiceMock.GetProfileFunc: method is nil but profileService.GetProfile was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockGetProfile.Lock()
	mock.calls.GetProfile = append(mock.calls.GetProfile, callInfo)
	mock.lockGetProfile.Unlock()
	return mock.GetProfileFunc(ctx)
}

func (mock *profileServiceMock) GetProfileCalls() []struct {
	Ctx context.Context
} {
	mock.lockGetProfile.RLock()
	calls := mock.calls.GetProfile
	mock.lockGetProfile.RUnlock()
	return calls
}

func (mock *profileServiceMock) UpdateDisplayName(ctx context.Context, input user.UpdateDisplayNameInput) (*domain.User, error) {
	if mock.UpdateDisplayNameFunc == nil {
		panic("profileServiceMock.UpdateDisplayNameFunc: method is nil but profileService.UpdateDisplayName was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input user.UpdateDisplayNameInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUpdateDisplayName.Lock()
	mock.calls.UpdateDisplayName = append(mock.calls.UpdateDisplayName, callInfo)
	mock.lockUpdateDisplayName.Unlock()
	return mock.UpdateDisplayNameFunc(ctx, input)
}

func (mock *profileServiceMock) UpdateDisplayNameCalls() []struct {
	Ctx   context.Context
	Input user.UpdateDisplayNameInput
} {
	mock.lockUpdateDisplayName.RLock()
	calls := mock.calls.UpdateDisplayName
	mock.lockUpdateDisplayName.RUnlock()
	return calls
}
