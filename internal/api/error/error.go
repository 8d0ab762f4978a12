// Package error contains the JSON error body returned by every endpoint.
package error

import (
	"fmt"
	"net/http"

	"github.com/goccy/go-json"
)

type Error struct {
	Status  int       `json:"status"`
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	ErrorID string    `json:"error_id"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (%d): %s", e.Code, e.Status, e.Message)
}

// EncodeError writes an error body with the status mapped from code.
func EncodeError(w http.ResponseWriter, code ErrorCode, message, errorID string) error {
	body := Error{
		Status:  code.StatusCode(),
		Code:    code,
		Message: message,
		ErrorID: errorID,
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(body.Status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		return fmt.Errorf("encoding error body: %w", err)
	}
	return nil
}

func EncodeInternalError(w http.ResponseWriter, errorID string) error {
	return EncodeError(w, InternalServerError, "internal server error", errorID)
}
