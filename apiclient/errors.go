package apiclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	autherrors "github.com/jrsteele09/greenos-console/internal/errors"
)

// NetworkError is a transport failure (timeout, refused connection, broken body).
// It never triggers a token refresh.
type NetworkError struct {
	Method string
	URL    string
	Err    error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *NetworkError) Unwrap() []error {
	return []error{autherrors.ErrNetwork, e.Err}
}

// ResponseError is a non-2xx response from the backend.
type ResponseError struct {
	StatusCode int
	Detail     string
	ErrorCode  string
	Body       []byte

	// SessionExpired is set on a 401 whose refresh attempt failed.
	SessionExpired bool
}

func (e *ResponseError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("%d %s: %s", e.StatusCode, http.StatusText(e.StatusCode), e.Detail)
}

func (e *ResponseError) Is(target error) bool {
	switch target {
	case autherrors.ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	case autherrors.ErrSessionExpired:
		return e.SessionExpired
	case autherrors.ErrBackendRejected:
		return !e.SessionExpired
	}
	return false
}

// Message returns the text to show a user: the backend detail when present.
func (e *ResponseError) Message() string {
	if e.Detail != "" {
		return e.Detail
	}
	return http.StatusText(e.StatusCode)
}

type errorPayload struct {
	Detail    json.RawMessage `json:"detail"`
	ErrorCode string          `json:"error_code"`
}

type validationIssue struct {
	Loc []any  `json:"loc"`
	Msg string `json:"msg"`
}

func newResponseError(status int, body []byte) *ResponseError {
	re := &ResponseError{StatusCode: status, Body: body}
	var payload errorPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return re
	}
	re.ErrorCode = payload.ErrorCode
	re.Detail = parseDetail(payload.Detail)
	return re
}

// parseDetail accepts both the plain string form and the validation list form
// ([{"loc": ["body", "email"], "msg": "..."}]).
func parseDetail(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var issues []validationIssue
	if err := json.Unmarshal(raw, &issues); err != nil {
		return ""
	}
	msgs := make([]string, 0, len(issues))
	for _, issue := range issues {
		if issue.Msg == "" {
			continue
		}
		loc := make([]string, 0, len(issue.Loc))
		for _, part := range issue.Loc {
			loc = append(loc, fmt.Sprint(part))
		}
		if len(loc) > 0 {
			msgs = append(msgs, strings.Join(loc, ".")+": "+issue.Msg)
		} else {
			msgs = append(msgs, issue.Msg)
		}
	}
	return strings.Join(msgs, "; ")
}
