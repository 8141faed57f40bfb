package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
)

// envelope is the uniform response wrapper: exactly one of Data or Err is
// set.
type envelope struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Err     *errorBody `json:"error,omitempty"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func (a *API) writeJSON(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		a.log.Error(context.Background(), "failed to encode JSON response", "error", err)
	}
}

func (a *API) writeData(w http.ResponseWriter, status int, data any) {
	a.writeJSON(w, status, envelope{Success: true, Data: data})
}

// writeError converts err to the uniform error envelope. The original error
// is logged; only the mapped code/message/details reach the client.
func (a *API) writeError(w http.ResponseWriter, r *http.Request, err error) {
	appErr := asAppError(err)
	if appErr.Status >= http.StatusInternalServerError {
		a.log.Error(r.Context(), "request failed", "path", r.URL.Path, "error", err)
	}
	a.writeJSON(w, appErr.Status, envelope{Success: false, Err: &errorBody{
		Code:    appErr.Code,
		Message: appErr.Message,
		Details: appErr.Details,
	}})
}

// decodeJSON parses the request body into v. Malformed JSON is a validation
// failure, not an internal error.
func decodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return &Error{
			Status:  http.StatusBadRequest,
			Code:    "VALIDATION_ERROR",
			Message: "Invalid input data",
		}
	}
	return nil
}
