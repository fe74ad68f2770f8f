package ui

import (
	"encoding/json"
	"net/http"

	apperrors "assurscore/internal/errors"
)

// errorBody is the wire shape of every error response: a stable machine
// code plus a human message. Internals never leak.
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

var statusByCode = map[string]int{
	apperrors.CodeNotFound:        http.StatusNotFound,
	apperrors.CodeForbidden:       http.StatusForbidden,
	apperrors.CodeValidationError: http.StatusBadRequest,
	apperrors.CodeInvalidState:    http.StatusConflict,
	apperrors.CodeDatabaseError:   http.StatusInternalServerError,
	apperrors.CodeInternalError:   http.StatusInternalServerError,
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// respondError maps a domain error onto its HTTP status and wire shape.
func (a *App) respondError(w http.ResponseWriter, err error) {
	appErr := apperrors.FromDomain(err)
	status, ok := statusByCode[appErr.Code]
	if !ok {
		status = http.StatusInternalServerError
	}
	if status >= http.StatusInternalServerError {
		a.logger.Error("request failed: %v", err)
	}
	respondJSON(w, status, errorBody{Code: appErr.Code, Message: appErr.Message})
}

// decodeJSON reads a JSON request body into dst with basic hygiene.
func decodeJSON(r *http.Request, dst interface{}) error {
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
