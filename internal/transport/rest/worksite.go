package rest

import (
	"net/http"

	worksitesvc "github.com/molcom/timeclock-backend/internal/service/worksite"
)

type createWorksiteRequest struct {
	Name      string   `json:"name"`
	Address   string   `json:"address"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type updateWorksiteRequest struct {
	Name      *string  `json:"name"`
	Address   *string  `json:"address"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

func (h *Handlers) listWorksites(w http.ResponseWriter, r *http.Request) {
	lat, err := queryFloat(r, "lat")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	lon, err := queryFloat(r, "lon")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	sites, err := h.svc.Worksites.List(r.Context(), worksitesvc.ListInput{
		Latitude:  lat,
		Longitude: lon,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toWorksiteDTOs(sites))
}

func (h *Handlers) createWorksite(w http.ResponseWriter, r *http.Request) {
	var req createWorksiteRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	site, err := h.svc.Worksites.CreateWorksite(r.Context(), worksitesvc.CreateWorksiteInput{
		Name:      req.Name,
		Address:   req.Address,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toWorksiteDTO(site))
}

func (h *Handlers) updateWorksite(w http.ResponseWriter, r *http.Request) {
	worksiteID, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req updateWorksiteRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	site, err := h.svc.Worksites.UpdateWorksite(r.Context(), worksitesvc.UpdateWorksiteInput{
		WorksiteID: worksiteID,
		Name:       req.Name,
		Address:    req.Address,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toWorksiteDTO(site))
}

func (h *Handlers) deleteWorksite(w http.ResponseWriter, r *http.Request) {
	worksiteID, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	err = h.svc.Worksites.DeleteWorksite(r.Context(), worksitesvc.DeleteWorksiteInput{WorksiteID: worksiteID})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Worksite deleted"})
}
