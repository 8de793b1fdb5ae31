package apiclient

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/adrianAraqueG/gaston/internal/core"
)

// ErrUnauthorized is returned for every 401, whether or not a redirect happened.
var ErrUnauthorized = core.ErrUnauthorized

// ErrNetwork wraps transport failures: the request never produced a response.
var ErrNetwork = errors.New("No se pudo conectar con el servidor")

// APIError is a non-2xx response other than 401. The backend sends message
// either as a string or as a list of validation messages.
type APIError struct {
	StatusCode int
	Messages   []string
}

func (e *APIError) Error() string {
	return strings.Join(e.Messages, ", ")
}

func (e *APIError) UnmarshalJSON(b []byte) error {
	var raw struct {
		StatusCode int             `json:"statusCode"`
		Message    json.RawMessage `json:"message"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	e.StatusCode = raw.StatusCode
	e.Messages = nil
	if len(raw.Message) == 0 || string(raw.Message) == "null" {
		return nil
	}
	var single string
	if err := json.Unmarshal(raw.Message, &single); err == nil {
		e.Messages = []string{single}
		return nil
	}
	return json.Unmarshal(raw.Message, &e.Messages)
}

// Message extracts the text a form or banner should show for err.
func Message(err error, fallback string) string {
	if err == nil {
		return ""
	}
	var ue *UserError
	if errors.As(err, &ue) {
		return ue.msg
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if msg := apiErr.Error(); msg != "" {
			return msg
		}
		return fallback
	}
	if errors.Is(err, ErrNetwork) {
		return ErrNetwork.Error()
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallback
}

// UserError carries a display message while keeping the cause reachable
// through errors.Is and errors.As.
type UserError struct {
	msg string
	err error
}

func (e *UserError) Error() string { return e.msg }
func (e *UserError) Unwrap() error { return e.err }

// Normalize converts err into a UserError whose message is Message(err, fallback).
func Normalize(err error, fallback string) error {
	if err == nil {
		return nil
	}
	var ue *UserError
	if errors.As(err, &ue) {
		return err
	}
	return &UserError{msg: Message(err, fallback), err: err}
}

// StatusCode reports the HTTP status behind err, or 0 when there is none.
func StatusCode(err error) int {
	if errors.Is(err, ErrUnauthorized) {
		return 401
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
