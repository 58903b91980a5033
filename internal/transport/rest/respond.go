package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/molcom/timeclock-backend/internal/domain"
)

type fieldErrorDTO struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// errorResponse is the JSON body for all non-2xx responses. The conflict
// payloads carry the clashing entry so clients can show "clock out first" or
// highlight the overlapping block.
type errorResponse struct {
	Error            string          `json:"error"`
	Fields           []fieldErrorDTO `json:"fields,omitempty"`
	ActiveTimer      *timeEntryDTO   `json:"activeTimer,omitempty"`
	OverlappingEntry *timeEntryDTO   `json:"overlappingEntry,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// handleError translates service errors into HTTP responses.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var verr *domain.ValidationError
	var activeErr *domain.ActiveTimerError
	var overlapErr *domain.OverlapError

	switch {
	case errors.As(err, &activeErr):
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:       "You already have an active timer running",
			ActiveTimer: toTimeEntryDTO(activeErr.Entry),
		})
	case errors.As(err, &overlapErr):
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:            "Time entry overlaps with existing entry",
			OverlappingEntry: toTimeEntryDTO(overlapErr.Entry),
		})
	case errors.As(err, &verr):
		fields := make([]fieldErrorDTO, 0, len(verr.Errors))
		for _, fe := range verr.Errors {
			fields = append(fields, fieldErrorDTO{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:  "Validation failed",
			Fields: fields,
		})
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "Not authorized")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "Not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "Already exists")
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		// Client went away; nothing useful to write.
		log.DebugContext(r.Context(), "request canceled", slog.String("path", r.URL.Path))
	default:
		log.ErrorContext(r.Context(), "request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// decodeJSON parses a request body into dst, rejecting unknown fields.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return domain.NewValidationError("body", "invalid JSON: "+err.Error())
	}
	return nil
}
