// Package response
package response

import (
	"encoding/json"
	"net/http"

	"inkwell/internal/logger"
)

const MsgInvalidInput = "invalid input"

// Response is the body of every error reply.
type Response struct {
	Error   string            `json:"error,omitempty"`
	Message string            `json:"message,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

type ResponseWriter interface {
	Write(w http.ResponseWriter, status int, body any)
	WriteError(w http.ResponseWriter, status int, msg string)
	WriteValidationError(w http.ResponseWriter, errs map[string]string)
}

type jsonWriter struct {
	log logger.Logger
}

func NewJSONWriter(log logger.Logger) ResponseWriter {
	return &jsonWriter{log: log}
}

func (j *jsonWriter) Write(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		j.log.Error("http: failed to encode response", "error", err)
	}
}

func (j *jsonWriter) WriteError(w http.ResponseWriter, status int, msg string) {
	j.Write(w, status, &Response{Error: msg})
}

func (j *jsonWriter) WriteValidationError(w http.ResponseWriter, errs map[string]string) {
	j.Write(w, http.StatusBadRequest, &Response{
		Error:  MsgInvalidInput,
		Errors: errs,
	})
}
