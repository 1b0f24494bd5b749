// Package response writes the JSON envelope used by every endpoint, including
// the one-shot notice a mutation returns in place of a session-bound flash.
package response

import (
	"encoding/json"
	"net/http"
)

// NoticeSuccess and NoticeError are the two notice kinds a mutation can carry.
const (
	NoticeKindSuccess = "success"
	NoticeKindError   = "error"
)

// Notice is a one-shot success/error message consumed once by the caller.
type Notice struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type envelope struct {
	Status  int         `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
	Notice  *Notice     `json:"notice,omitempty"`
}

func write(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body) //nolint:errcheck
}

// Success sends a 200 JSON response with data.
func Success(w http.ResponseWriter, data interface{}) {
	write(w, http.StatusOK, envelope{Status: http.StatusOK, Data: data})
}

// Created sends a 201 JSON response with data.
func Created(w http.ResponseWriter, data interface{}) {
	write(w, http.StatusCreated, envelope{Status: http.StatusCreated, Data: data})
}

// Error sends a JSON error response.
func Error(w http.ResponseWriter, status int, message string) {
	write(w, status, envelope{Status: status, Message: message})
}

// ValidationError sends a 422 with a field-level error map.
func ValidationError(w http.ResponseWriter, errs map[string]string) {
	write(w, http.StatusUnprocessableEntity, envelope{
		Status:  http.StatusUnprocessableEntity,
		Message: "Validation failed",
		Errors:  errs,
	})
}

// SuccessNotice sends data plus a success notice.
func SuccessNotice(w http.ResponseWriter, status int, data interface{}, message string) {
	write(w, status, envelope{
		Status: status,
		Data:   data,
		Notice: &Notice{Kind: NoticeKindSuccess, Message: message},
	})
}

// ErrorNotice sends an error notice without field errors.
func ErrorNotice(w http.ResponseWriter, status int, message string) {
	write(w, status, envelope{
		Status:  status,
		Message: message,
		Notice:  &Notice{Kind: NoticeKindError, Message: message},
	})
}

// NotFound sends a 404.
func NotFound(w http.ResponseWriter) {
	Error(w, http.StatusNotFound, "Not found")
}

// Unauthorized sends a 401.
func Unauthorized(w http.ResponseWriter) {
	Error(w, http.StatusUnauthorized, "Unauthorized")
}
