package rest

import (
	"net/http"

	settingssvc "github.com/molcom/timeclock-backend/internal/service/settings"
)

type updateSettingsRequest struct {
	CompanyName *string `json:"companyName"`
	LogoPath    *string `json:"logoPath"`
	ReminderDay *int    `json:"reminderDay"`
}

func (h *Handlers) getSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.svc.Settings.Get(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toSettingsDTO(settings))
}

func (h *Handlers) updateSettings(w http.ResponseWriter, r *http.Request) {
	var req updateSettingsRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	settings, err := h.svc.Settings.Update(r.Context(), settingssvc.UpdateSettingsInput{
		CompanyName: req.CompanyName,
		LogoPath:    req.LogoPath,
		ReminderDay: req.ReminderDay,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toSettingsDTO(settings))
}
