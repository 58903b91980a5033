package timeentry

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/molcom/timeclock-backend/internal/domain"
)

var _ entryRepo = &entryRepoMock{}

type entryRepoMock struct {
	CreateFunc         func(ctx context.Context, e *domain.TimeEntry) (*domain.TimeEntry, error)
	GetByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.TimeEntry, error)
	UpdateFunc         func(ctx context.Context, e *domain.TimeEntry) (*domain.TimeEntry, error)
	DeleteFunc         func(ctx context.Context, id uuid.UUID) error
	ListFunc           func(ctx context.Context, filter domain.TimeEntryFilter) ([]domain.TimeEntry, error)
	GetActiveTimerFunc func(ctx context.Context, userID uuid.UUID) (*domain.TimeEntry, error)
	FindOverlapFunc    func(ctx context.Context, userID uuid.UUID, start, end time.Time, excludeID uuid.UUID) (*domain.TimeEntry, error)
	ReplaceTasksFunc   func(ctx context.Context, entryID uuid.UUID, taskIDs []uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx context.Context
			E   *domain.TimeEntry
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Update []struct {
			Ctx context.Context
			E   *domain.TimeEntry
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			Filter domain.TimeEntryFilter
		}
		GetActiveTimer []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		FindOverlap []struct {
			Ctx       context.Context
			UserID    uuid.UUID
			Start     time.Time
			End       time.Time
			ExcludeID uuid.UUID
		}
		ReplaceTasks []struct {
			Ctx     context.Context
			EntryID uuid.UUID
			TaskIDs []uuid.UUID
		}
	}
	lockCreate         sync.RWMutex
	lockGetByID        sync.RWMutex
	lockUpdate         sync.RWMutex
	lockDelete         sync.RWMutex
	lockList           sync.RWMutex
	lockGetActiveTimer sync.RWMutex
	lockFindOverlap    sync.RWMutex
	lockReplaceTasks   sync.RWMutex
}

func (mock *entryRepoMock) Create(ctx context.Context, e *domain.TimeEntry) (*domain.TimeEntry, error) {
	if mock.CreateFunc == nil {
		panic("entryRepoMock.CreateFunc: method is nil but entryRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   *domain.TimeEntry
	}{Ctx: ctx, E: e}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, e)
}

func (mock *entryRepoMock) CreateCalls() []struct {
	Ctx context.Context
	E   *domain.TimeEntry
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *entryRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.TimeEntry, error) {
	if mock.GetByIDFunc == nil {
		panic("entryRepoMock.GetByIDFunc: method is nil but entryRepo.GetByID was just called")
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

func (mock *entryRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *entryRepoMock) Update(ctx context.Context, e *domain.TimeEntry) (*domain.TimeEntry, error) {
	if mock.UpdateFunc == nil {
		panic("entryRepoMock.UpdateFunc: method is nil but entryRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   *domain.TimeEntry
	}{Ctx: ctx, E: e}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, e)
}

func (mock *entryRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	E   *domain.TimeEntry
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *entryRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("entryRepoMock.DeleteFunc: method is nil but entryRepo.Delete was just called")
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

func (mock *entryRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *entryRepoMock) List(ctx context.Context, filter domain.TimeEntryFilter) ([]domain.TimeEntry, error) {
	if mock.ListFunc == nil {
		panic("entryRepoMock.ListFunc: method is nil but entryRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.TimeEntryFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *entryRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.TimeEntryFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *entryRepoMock) GetActiveTimer(ctx context.Context, userID uuid.UUID) (*domain.TimeEntry, error) {
	if mock.GetActiveTimerFunc == nil {
		panic("entryRepoMock.GetActiveTimerFunc: method is nil but entryRepo.GetActiveTimer was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockGetActiveTimer.Lock()
	mock.calls.GetActiveTimer = append(mock.calls.GetActiveTimer, callInfo)
	mock.lockGetActiveTimer.Unlock()
	return mock.GetActiveTimerFunc(ctx, userID)
}

func (mock *entryRepoMock) GetActiveTimerCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockGetActiveTimer.RLock()
	calls := mock.calls.GetActiveTimer
	mock.lockGetActiveTimer.RUnlock()
	return calls
}

func (mock *entryRepoMock) FindOverlap(ctx context.Context, userID uuid.UUID, start, end time.Time, excludeID uuid.UUID) (*domain.TimeEntry, error) {
	if mock.FindOverlapFunc == nil {
		panic("entryRepoMock.FindOverlapFunc: method is nil but entryRepo.FindOverlap was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		UserID    uuid.UUID
		Start     time.Time
		End       time.Time
		ExcludeID uuid.UUID
	}{Ctx: ctx, UserID: userID, Start: start, End: end, ExcludeID: excludeID}
	mock.lockFindOverlap.Lock()
	mock.calls.FindOverlap = append(mock.calls.FindOverlap, callInfo)
	mock.lockFindOverlap.Unlock()
	return mock.FindOverlapFunc(ctx, userID, start, end, excludeID)
}

func (mock *entryRepoMock) FindOverlapCalls() []struct {
	Ctx       context.Context
	UserID    uuid.UUID
	Start     time.Time
	End       time.Time
	ExcludeID uuid.UUID
} {
	mock.lockFindOverlap.RLock()
	calls := mock.calls.FindOverlap
	mock.lockFindOverlap.RUnlock()
	return calls
}

func (mock *entryRepoMock) ReplaceTasks(ctx context.Context, entryID uuid.UUID, taskIDs []uuid.UUID) error {
	if mock.ReplaceTasksFunc == nil {
		panic("entryRepoMock.ReplaceTasksFunc: method is nil but entryRepo.ReplaceTasks was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		EntryID uuid.UUID
		TaskIDs []uuid.UUID
	}{Ctx: ctx, EntryID: entryID, TaskIDs: taskIDs}
	mock.lockReplaceTasks.Lock()
	mock.calls.ReplaceTasks = append(mock.calls.ReplaceTasks, callInfo)
	mock.lockReplaceTasks.Unlock()
	return mock.ReplaceTasksFunc(ctx, entryID, taskIDs)
}

func (mock *entryRepoMock) ReplaceTasksCalls() []struct {
	Ctx     context.Context
	EntryID uuid.UUID
	TaskIDs []uuid.UUID
} {
	mock.lockReplaceTasks.RLock()
	calls := mock.calls.ReplaceTasks
	mock.lockReplaceTasks.RUnlock()
	return calls
}
