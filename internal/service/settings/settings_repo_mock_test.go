package settings

import (
	"context"
	"sync"

	"github.com/molcom/timeclock-backend/internal/domain"
)

var _ settingsRepo = &settingsRepoMock{}

type settingsRepoMock struct {
	GetFunc    func(ctx context.Context) (*domain.SystemSettings, error)
	UpdateFunc func(ctx context.Context, s *domain.SystemSettings) (*domain.SystemSettings, error)

	calls struct {
		Get []struct {
			Ctx context.Context
		}
		Update []struct {
			Ctx context.Context
			S   *domain.SystemSettings
		}
	}
	lockGet    sync.RWMutex
	lockUpdate sync.RWMutex
}

func (mock *settingsRepoMock) Get(ctx context.Context) (*domain.SystemSettings, error) {
	if mock.GetFunc == nil {
		panic("settingsRepoMock.GetFunc: method is nil but settingsRepo.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx)
}

func (mock *settingsRepoMock) GetCalls() []struct {
	Ctx context.Context
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *settingsRepoMock) Update(ctx context.Context, s *domain.SystemSettings) (*domain.SystemSettings, error) {
	if mock.UpdateFunc == nil {
		panic("settingsRepoMock.UpdateFunc: method is nil but settingsRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   *domain.SystemSettings
	}{Ctx: ctx, S: s}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, s)
}

func (mock *settingsRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	S   *domain.SystemSettings
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
