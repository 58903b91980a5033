package rest

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/molcom/timeclock-backend/internal/domain"
	"github.com/molcom/timeclock-backend/internal/service/timeentry"
)

type createEntryRequest struct {
	UserID       *uuid.UUID  `json:"userId"`
	WorksiteID   uuid.UUID   `json:"worksiteId"`
	ProjectID    *uuid.UUID  `json:"projectId"`
	EntryType    string      `json:"entryType"`
	EntryDate    *string     `json:"entryDate"`
	StartTime    *time.Time  `json:"startTime"`
	EndTime      *time.Time  `json:"endTime"`
	BreakMinutes int         `json:"breakMinutes"`
	TotalHours   *float64    `json:"totalHours"`
	Notes        *string     `json:"notes"`
	PhotoPath    *string     `json:"photoPath"`
	TaskIDs      []uuid.UUID `json:"taskIds"`
}

type updateEntryRequest struct {
	WorksiteID   *uuid.UUID  `json:"worksiteId"`
	ProjectID    *uuid.UUID  `json:"projectId"`
	EntryDate    *string     `json:"entryDate"`
	StartTime    *time.Time  `json:"startTime"`
	EndTime      *time.Time  `json:"endTime"`
	BreakMinutes *int        `json:"breakMinutes"`
	TotalHours   *float64    `json:"totalHours"`
	Notes        *string     `json:"notes"`
	PhotoPath    *string     `json:"photoPath"`
	TaskIDs      []uuid.UUID `json:"taskIds"`
}

type clockOutRequest struct {
	EndTime      *time.Time  `json:"endTime"`
	BreakMinutes *int        `json:"breakMinutes"`
	Notes        *string     `json:"notes"`
	TaskIDs      []uuid.UUID `json:"taskIds"`
}

func (h *Handlers) listEntries(w http.ResponseWriter, r *http.Request) {
	userID, err := queryUUID(r, "userId")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	from, err := queryDate(r, "startDate")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	to, err := queryDate(r, "endDate")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	entries, err := h.svc.Entries.List(r.Context(), timeentry.ListInput{
		UserID: userID,
		From:   from,
		To:     to,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toTimeEntryDTOs(entries))
}

func (h *Handlers) createEntry(w http.ResponseWriter, r *http.Request) {
	var req createEntryRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	entryDate, err := parseDate("entryDate", req.EntryDate)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	entry, err := h.svc.Entries.CreateEntry(r.Context(), timeentry.CreateEntryInput{
		UserID:       req.UserID,
		WorksiteID:   req.WorksiteID,
		ProjectID:    req.ProjectID,
		EntryType:    domain.EntryType(req.EntryType),
		EntryDate:    entryDate,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		BreakMinutes: req.BreakMinutes,
		TotalHours:   req.TotalHours,
		Notes:        req.Notes,
		PhotoPath:    req.PhotoPath,
		TaskIDs:      req.TaskIDs,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTimeEntryDTO(entry))
}

func (h *Handlers) activeTimer(w http.ResponseWriter, r *http.Request) {
	userID, err := queryUUID(r, "userId")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	entry, err := h.svc.Entries.ActiveTimer(r.Context(), timeentry.ActiveTimerInput{UserID: userID})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	// A JSON null body signals "no timer running".
	writeJSON(w, http.StatusOK, toTimeEntryDTO(entry))
}

func (h *Handlers) clockOut(w http.ResponseWriter, r *http.Request) {
	entryID, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req clockOutRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	entry, err := h.svc.Entries.ClockOut(r.Context(), timeentry.ClockOutInput{
		EntryID:      entryID,
		EndTime:      req.EndTime,
		BreakMinutes: req.BreakMinutes,
		Notes:        req.Notes,
		TaskIDs:      req.TaskIDs,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toTimeEntryDTO(entry))
}

func (h *Handlers) updateEntry(w http.ResponseWriter, r *http.Request) {
	entryID, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req updateEntryRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	entryDate, err := parseDate("entryDate", req.EntryDate)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	entry, err := h.svc.Entries.UpdateEntry(r.Context(), timeentry.UpdateEntryInput{
		EntryID:      entryID,
		WorksiteID:   req.WorksiteID,
		ProjectID:    req.ProjectID,
		EntryDate:    entryDate,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		BreakMinutes: req.BreakMinutes,
		TotalHours:   req.TotalHours,
		Notes:        req.Notes,
		PhotoPath:    req.PhotoPath,
		TaskIDs:      req.TaskIDs,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toTimeEntryDTO(entry))
}

func (h *Handlers) deleteEntry(w http.ResponseWriter, r *http.Request) {
	entryID, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.svc.Entries.DeleteEntry(r.Context(), timeentry.DeleteEntryInput{EntryID: entryID}); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Time entry deleted"})
}
