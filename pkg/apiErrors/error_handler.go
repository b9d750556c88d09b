package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Error codes returned to clients. The numeric ranges group codes by
// concern.
const (
	// Validation errors (VAL_*)
	ErrInvalidRequest      = "VAL_001" // malformed request
	ErrMissingRequiredData = "VAL_002" // required field absent
	ErrInvalidFormat       = "VAL_003" // field present but unparseable

	// Resource errors (RES_*)
	ErrResourceNotFound = "RES_001" // referenced entity does not exist

	// Server errors (SRV_*)
	ErrInternalServer    = "SRV_001" // unexpected failure
	ErrDatabaseOperation = "SRV_002" // store operation failed
	ErrExternalService   = "SRV_003" // upstream service failed
	ErrCommunication     = "SRV_004" // transport failure
)

var httpStatusMap = map[string]int{
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrResourceNotFound:    http.StatusNotFound,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrDatabaseOperation:   http.StatusInternalServerError,
	ErrExternalService:     http.StatusBadGateway,
	ErrCommunication:       http.StatusServiceUnavailable,
}

// APIError is the standard error payload.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// WriteError writes the standardized error payload with the status
// mapped from its code. Unknown codes answer 500.
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// FromError wraps a Go error in an APIError with the given code.
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "unknown error",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
