package hostfuncs

import (
	"encoding/json"
)

// ErrorResponse is a structured failure returned to a mod as JSON. Mods
// receive consistent, parseable errors instead of WASM traps.
type ErrorResponse struct {
	// Error is a machine-readable identifier, e.g. "NOT_FOUND".
	Error string `json:"error"`

	// Message is a human-readable description.
	Message string `json:"message"`

	// Code is a numeric code in HTTP convention (400, 404, 500).
	Code int `json:"code"`
}

// ToJSON serializes the ErrorResponse. Returns nil if serialization fails,
// which cannot happen for this flat type.
func (e ErrorResponse) ToJSON() []byte {
	data, err := json.Marshal(e)
	if err != nil {
		return nil
	}
	return data
}

// NewValidationError reports malformed input from the mod.
func NewValidationError(message string) ErrorResponse {
	return ErrorResponse{Error: "VALIDATION_ERROR", Message: message, Code: 400}
}

// NewNotFoundError reports an unknown host function name.
func NewNotFoundError(name string) ErrorResponse {
	return ErrorResponse{Error: "NOT_FOUND", Message: "unknown host function: " + name, Code: 404}
}

// NewInternalError reports an unexpected host-side failure.
func NewInternalError(message string) ErrorResponse {
	return ErrorResponse{Error: "INTERNAL_ERROR", Message: message, Code: 500}
}

// NewPanicError reports a recovered panic.
func NewPanicError(panicValue any) ErrorResponse {
	var msg string
	switch v := panicValue.(type) {
	case error:
		msg = v.Error()
	case string:
		msg = v
	default:
		msg = "panic recovered"
	}
	return ErrorResponse{Error: "INTERNAL_ERROR", Message: "panic: " + msg, Code: 500}
}
