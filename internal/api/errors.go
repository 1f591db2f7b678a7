package api

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Error carries a non-2xx backend response. Detail is the backend's
// structured error message when the body contained one.
type Error struct {
	StatusCode int
	Detail     string
	RequestID  string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("backend returned %d", e.StatusCode)
}

// newError builds an Error from a failed response, extracting the backend's
// {"detail": "..."} payload when present. Any other body shape is ignored.
func newError(resp *http.Response, body []byte, requestID string) *Error {
	apiErr := &Error{StatusCode: resp.StatusCode, RequestID: requestID}

	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		apiErr.Detail = payload.Detail
	}

	return apiErr
}
