package contentful

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrMissingCredentials is returned before any request is made when the
// space ID or access token is not configured.
var ErrMissingCredentials = errors.New("contentful: space ID and access token are required")

// APIError is a non-2xx response from a Contentful API.
type APIError struct {
	StatusCode int
	ID         string
	Message    string
	RequestID  string
}

func (e *APIError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("contentful: status %d", e.StatusCode)
	}
	return fmt.Sprintf("contentful: status %d: %s: %s", e.StatusCode, e.ID, e.Message)
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

type errorBody struct {
	Sys       Sys    `json:"sys"`
	Message   string `json:"message"`
	RequestID string `json:"requestId"`
}

func newAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return apiErr
	}
	var eb errorBody
	if json.Unmarshal(body, &eb) == nil {
		apiErr.ID = eb.Sys.ID
		apiErr.Message = eb.Message
		apiErr.RequestID = eb.RequestID
	}
	return apiErr
}
