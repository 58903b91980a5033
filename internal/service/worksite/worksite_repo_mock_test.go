package worksite

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/molcom/timeclock-backend/internal/domain"
)

var _ worksiteRepo = &worksiteRepoMock{}

type worksiteRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Worksite, error)
	ListFunc    func(ctx context.Context) ([]domain.Worksite, error)
	CreateFunc  func(ctx context.Context, w *domain.Worksite) (*domain.Worksite, error)
	UpdateFunc  func(ctx context.Context, w *domain.Worksite) (*domain.Worksite, error)
	DeleteFunc  func(ctx context.Context, id uuid.UUID) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx context.Context
		}
		Create []struct {
			Ctx context.Context
			W   *domain.Worksite
		}
		Update []struct {
			Ctx context.Context
			W   *domain.Worksite
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
	lockCreate  sync.RWMutex
	lockUpdate  sync.RWMutex
	lockDelete  sync.RWMutex
}

func (mock *worksiteRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Worksite, error) {
	if mock.GetByIDFunc == nil {
		panic("worksiteRepoMock.GetByIDFunc: method is nil but worksiteRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *worksiteRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *worksiteRepoMock) List(ctx context.Context) ([]domain.Worksite, error) {
	if mock.ListFunc == nil {
		panic("worksiteRepoMock.ListFunc: method is nil but worksiteRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *worksiteRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *worksiteRepoMock) Create(ctx context.Context, w *domain.Worksite) (*domain.Worksite, error) {
	if mock.CreateFunc == nil {
		panic("worksiteRepoMock.CreateFunc: method is nil but worksiteRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		W   *domain.Worksite
	}{Ctx: ctx, W: w}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, w)
}

func (mock *worksiteRepoMock) CreateCalls() []struct {
	Ctx context.Context
	W   *domain.Worksite
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *worksiteRepoMock) Update(ctx context.Context, w *domain.Worksite) (*domain.Worksite, error) {
	if mock.UpdateFunc == nil {
		panic("worksiteRepoMock.UpdateFunc: method is nil but worksiteRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		W   *domain.Worksite
	}{Ctx: ctx, W: w}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, w)
}

func (mock *worksiteRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	W   *domain.Worksite
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *worksiteRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("worksiteRepoMock.DeleteFunc: method is nil but worksiteRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *worksiteRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

var _ geocoder = &geocoderMock{}

type geocoderMock struct {
	EnabledFunc func() bool
	GeocodeFunc func(ctx context.Context, address string) (float64, float64, error)

	calls struct {
		Enabled []struct{}
		Geocode []struct {
			Ctx     context.Context
			Address string
		}
	}
	lockEnabled sync.RWMutex
	lockGeocode sync.RWMutex
}

func (mock *geocoderMock) Enabled() bool {
	if mock.EnabledFunc == nil {
		panic("geocoderMock.EnabledFunc: method is nil but geocoder.Enabled was just called")
	}
	mock.lockEnabled.Lock()
	mock.calls.Enabled = append(mock.calls.Enabled, struct{}{})
	mock.lockEnabled.Unlock()
	return mock.EnabledFunc()
}

func (mock *geocoderMock) EnabledCalls() []struct{} {
	mock.lockEnabled.RLock()
	calls := mock.calls.Enabled
	mock.lockEnabled.RUnlock()
	return calls
}

func (mock *geocoderMock) Geocode(ctx context.Context, address string) (float64, float64, error) {
	if mock.GeocodeFunc == nil {
		panic("geocoderMock.GeocodeFunc: method is nil but geocoder.Geocode was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Address string
	}{Ctx: ctx, Address: address}
	mock.lockGeocode.Lock()
	mock.calls.Geocode = append(mock.calls.Geocode, callInfo)
	mock.lockGeocode.Unlock()
	return mock.GeocodeFunc(ctx, address)
}

func (mock *geocoderMock) GeocodeCalls() []struct {
	Ctx     context.Context
	Address string
} {
	mock.lockGeocode.RLock()
	calls := mock.calls.Geocode
	mock.lockGeocode.RUnlock()
	return calls
}
