package remote

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// APIError is a non-2xx response from the fest API. Detail holds the
// server-provided message when the body carried one.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("fest API: %s (status %d)", e.Detail, e.Status)
	}
	return fmt.Sprintf("fest API: status %d", e.Status)
}

// IsAuthError reports whether err is an API rejection of the credential
// itself (401/403). Session handling clears the stored token on these.
func IsAuthError(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusForbidden
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// Message returns the server's message from err when present, else the
// fallback. Screens use this so remote failures show the API's own wording.
func Message(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return fallback
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return apiErr
	}

	// The API reports errors as {"detail": "..."}; tolerate {"message": ...}
	// from older endpoints.
	var payload struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &payload) == nil {
		if payload.Detail != "" {
			apiErr.Detail = payload.Detail
		} else {
			apiErr.Detail = payload.Message
		}
	}
	return apiErr
}
