package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/clubhub-dev/clubhub/internal/adapters/logger"
	"github.com/clubhub-dev/clubhub/internal/domain/common/errorz"
)

type apiError struct {
	Kind    errorz.Kind `json:"kind"`
	Message string      `json:"message"`
}

type apiResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *apiError   `json:"error,omitempty"`
}

func respondJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	response := apiResponse{
		Success: statusCode >= 200 && statusCode < 300,
		Data:    data,
	}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Log.Errorf("failed to encode response: %v", err)
	}
}

func respondCreated(w http.ResponseWriter, data interface{}) {
	respondJSON(w, http.StatusCreated, data)
}

func respondOK(w http.ResponseWriter, data interface{}) {
	respondJSON(w, http.StatusOK, data)
}

func respondNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// respondError maps the error taxonomy onto HTTP statuses. Unclassified
// errors become opaque 500s; the message is not leaked.
func respondError(w http.ResponseWriter, err error) {
	kind := errorz.KindOf(err)
	status, ok := statusByKind[kind]
	if !ok {
		logger.Log.Errorf("internal error: %v", err)
		status = http.StatusInternalServerError
		err = errors.New("internal server error")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	response := apiResponse{
		Success: false,
		Error:   &apiError{Kind: kind, Message: err.Error()},
	}
	if encodeErr := json.NewEncoder(w).Encode(response); encodeErr != nil {
		logger.Log.Errorf("failed to encode error response: %v", encodeErr)
	}
}

var statusByKind = map[errorz.Kind]int{
	errorz.KindValidation:      http.StatusBadRequest,
	errorz.KindUnauthenticated: http.StatusUnauthorized,
	errorz.KindForbidden:       http.StatusForbidden,
	errorz.KindNotFound:        http.StatusNotFound,
	errorz.KindConflict:        http.StatusConflict,
}

func decodeBody(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errorz.Validation("malformed request body")
	}
	return nil
}
