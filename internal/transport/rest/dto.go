package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/molcom/timeclock-backend/internal/domain"
	"github.com/molcom/timeclock-backend/internal/service/worksite"
)

type userDTO struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	FullName  string    `json:"fullName"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toUserDTO(u *domain.User) *userDTO {
	if u == nil {
		return nil
	}
	return &userDTO{
		ID:        u.ID,
		Username:  u.Username,
		FullName:  u.FullName,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toUserDTOs(users []domain.User) []userDTO {
	out := make([]userDTO, len(users))
	for i := range users {
		out[i] = *toUserDTO(&users[i])
	}
	return out
}

type timeEntryDTO struct {
	ID           uuid.UUID   `json:"id"`
	UserID       uuid.UUID   `json:"userId"`
	WorksiteID   uuid.UUID   `json:"worksiteId"`
	ProjectID    *uuid.UUID  `json:"projectId,omitempty"`
	EntryType    string      `json:"entryType"`
	EntryDate    string      `json:"entryDate"`
	StartTime    *time.Time  `json:"startTime,omitempty"`
	EndTime      *time.Time  `json:"endTime,omitempty"`
	BreakMinutes int         `json:"breakMinutes"`
	TotalHours   *float64    `json:"totalHours,omitempty"`
	Notes        *string     `json:"notes,omitempty"`
	PhotoPath    *string     `json:"photoPath,omitempty"`
	IsActive     bool        `json:"isActive"`
	TaskIDs      []uuid.UUID `json:"taskIds"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

func toTimeEntryDTO(e *domain.TimeEntry) *timeEntryDTO {
	if e == nil {
		return nil
	}
	taskIDs := e.TaskIDs
	if taskIDs == nil {
		taskIDs = []uuid.UUID{}
	}
	return &timeEntryDTO{
		ID:           e.ID,
		UserID:       e.UserID,
		WorksiteID:   e.WorksiteID,
		ProjectID:    e.ProjectID,
		EntryType:    string(e.EntryType),
		EntryDate:    e.EntryDate.Format("2006-01-02"),
		StartTime:    e.StartTime,
		EndTime:      e.EndTime,
		BreakMinutes: e.BreakMinutes,
		TotalHours:   e.TotalHours,
		Notes:        e.Notes,
		PhotoPath:    e.PhotoPath,
		IsActive:     e.IsActive,
		TaskIDs:      taskIDs,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func toTimeEntryDTOs(entries []domain.TimeEntry) []timeEntryDTO {
	out := make([]timeEntryDTO, len(entries))
	for i := range entries {
		out[i] = *toTimeEntryDTO(&entries[i])
	}
	return out
}

type projectDTO struct {
	ID          uuid.UUID `json:"id"`
	WorksiteID  uuid.UUID `json:"worksiteId"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toProjectDTO(p *domain.Project) *projectDTO {
	if p == nil {
		return nil
	}
	return &projectDTO{
		ID:          p.ID,
		WorksiteID:  p.WorksiteID,
		Name:        p.Name,
		Description: p.Description,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toProjectDTOs(projects []domain.Project) []projectDTO {
	out := make([]projectDTO, len(projects))
	for i := range projects {
		out[i] = *toProjectDTO(&projects[i])
	}
	return out
}

type worksiteDTO struct {
	ID        uuid.UUID    `json:"id"`
	Name      string       `json:"name"`
	Address   string       `json:"address"`
	Latitude  float64      `json:"latitude"`
	Longitude float64      `json:"longitude"`
	CreatedBy uuid.UUID    `json:"createdBy"`
	Projects  []projectDTO `json:"projects"`
	// Distance in meters from the caller, present only on distance queries.
	Distance  *float64  `json:"distance,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toWorksiteDTO(w *domain.Worksite) *worksiteDTO {
	if w == nil {
		return nil
	}
	return &worksiteDTO{
		ID:        w.ID,
		Name:      w.Name,
		Address:   w.Address,
		Latitude:  w.Latitude,
		Longitude: w.Longitude,
		CreatedBy: w.CreatedBy,
		Projects:  toProjectDTOs(w.Projects),
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

func toWorksiteDTOs(sites []worksite.WorksiteWithDistance) []worksiteDTO {
	out := make([]worksiteDTO, len(sites))
	for i := range sites {
		dto := toWorksiteDTO(&sites[i].Worksite)
		dto.Distance = sites[i].DistanceMeters
		out[i] = *dto
	}
	return out
}

type taskDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CreatedBy   uuid.UUID `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toTaskDTO(t *domain.Task) *taskDTO {
	if t == nil {
		return nil
	}
	return &taskDTO{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		CreatedBy:   t.CreatedBy,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func toTaskDTOs(tasks []domain.Task) []taskDTO {
	out := make([]taskDTO, len(tasks))
	for i := range tasks {
		out[i] = *toTaskDTO(&tasks[i])
	}
	return out
}

type settingsDTO struct {
	ID          uuid.UUID `json:"id"`
	CompanyName string    `json:"companyName"`
	LogoPath    *string   `json:"logoPath,omitempty"`
	ReminderDay int       `json:"reminderDay"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toSettingsDTO(s *domain.SystemSettings) *settingsDTO {
	if s == nil {
		return nil
	}
	return &settingsDTO{
		ID:          s.ID,
		CompanyName: s.CompanyName,
		LogoPath:    s.LogoPath,
		ReminderDay: s.ReminderDay,
		UpdatedAt:   s.UpdatedAt,
	}
}
