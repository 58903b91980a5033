package rest

import (
	"net/http"

	tasksvc "github.com/molcom/timeclock-backend/internal/service/task"
)

type createTaskRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type updateTaskRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (h *Handlers) listTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.svc.Tasks.List(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toTaskDTOs(tasks))
}

func (h *Handlers) createTask(w http.ResponseWriter, r *http.Request) {
	var req createTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	task, err := h.svc.Tasks.CreateTask(r.Context(), tasksvc.CreateTaskInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTaskDTO(task))
}

func (h *Handlers) updateTask(w http.ResponseWriter, r *http.Request) {
	taskID, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req updateTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	task, err := h.svc.Tasks.UpdateTask(r.Context(), tasksvc.UpdateTaskInput{
		TaskID:      taskID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toTaskDTO(task))
}

func (h *Handlers) deleteTask(w http.ResponseWriter, r *http.Request) {
	taskID, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.svc.Tasks.DeleteTask(r.Context(), tasksvc.DeleteTaskInput{TaskID: taskID}); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Task deleted"})
}
