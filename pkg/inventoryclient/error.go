package inventoryclient

import (
	"fmt"

	"github.com/pkg/errors"
)

// APIError is the decoded error envelope returned by the API
type APIError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code"`
	Message    string `json:"message,omitempty"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error %s: %s", e.Code, e.Message)
	}

	return fmt.Sprintf("api error %s (status %d)", e.Code, e.StatusCode)
}

// apiErrorFromResponse decodes an error body into an APIError, falling
// back to a plain error when the body is not the standard envelope
func apiErrorFromResponse(statusCode int, body []byte) error {
	apiErr := &APIError{StatusCode: statusCode}

	if err := json.Unmarshal(body, apiErr); err != nil || apiErr.Code == "" {
		return errors.Errorf("request failed with status %d", statusCode)
	}

	return apiErr
}
