package rest

import (
	"net/http"

	"github.com/google/uuid"

	projectsvc "github.com/molcom/timeclock-backend/internal/service/project"
)

type createProjectRequest struct {
	WorksiteID  uuid.UUID `json:"worksiteId"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	IsActive    *bool     `json:"isActive"`
}

type updateProjectRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"isActive"`
}

func (h *Handlers) listProjects(w http.ResponseWriter, r *http.Request) {
	worksiteID, err := queryUUID(r, "worksiteId")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	projects, err := h.svc.Projects.List(r.Context(), projectsvc.ListInput{
		WorksiteID: worksiteID,
		ActiveOnly: r.URL.Query().Get("activeOnly") == "true",
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toProjectDTOs(projects))
}

func (h *Handlers) createProject(w http.ResponseWriter, r *http.Request) {
	var req createProjectRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	project, err := h.svc.Projects.CreateProject(r.Context(), projectsvc.CreateProjectInput{
		WorksiteID:  req.WorksiteID,
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toProjectDTO(project))
}

func (h *Handlers) updateProject(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req updateProjectRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	project, err := h.svc.Projects.UpdateProject(r.Context(), projectsvc.UpdateProjectInput{
		ProjectID:   projectID,
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toProjectDTO(project))
}

func (h *Handlers) deleteProject(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.svc.Projects.DeleteProject(r.Context(), projectsvc.DeleteProjectInput{ProjectID: projectID}); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Project deleted"})
}
