package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrMalformedResponse is returned when the body is JSON of an unexpected shape
var ErrMalformedResponse = errors.New("malformed SMS logs response")

// ErrNoBaseURL is returned when no absolute API base URL is configured
var ErrNoBaseURL = errors.New("API base URL is not configured")

const maxErrorBody = 512

// APIError represents a non-2xx HTTP response
type APIError struct {
	StatusCode int
	Body       string // at most 512 bytes, cut on a rune boundary
}

func newAPIError(status int, body []byte) *APIError {
	if len(body) > maxErrorBody {
		n := maxErrorBody
		for n > 0 && !utf8.RuneStart(body[n]) {
			n--
		}
		body = body[:n]
	}
	return &APIError{StatusCode: status, Body: string(body)}
}

func (e *APIError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Body)
}

// Payload returns the body pretty-printed with two-space indentation when it
// is a non-empty JSON object. Key order and number literals are kept as sent.
func (e *APIError) Payload() (string, bool) {
	body := bytes.TrimSpace([]byte(e.Body))
	if len(body) == 0 || body[0] != '{' {
		return "", false
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err != nil || len(obj) == 0 {
		return "", false
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, body, "", "  "); err != nil {
		return "", false
	}
	return buf.String(), true
}

// DescribeError turns a fetch failure into display text.
// A non-empty JSON object payload is pretty-printed, otherwise the error
// message is used. Returns "" when neither is available so the caller can
// substitute a localized fallback.
func DescribeError(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if pretty, ok := apiErr.Payload(); ok {
			return pretty
		}
	}
	return err.Error()
}
