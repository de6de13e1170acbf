package core

import (
	"encoding/json"
	"fmt"
)

// BaseResponse is the envelope every backend endpoint answers with.
type BaseResponse[T any] struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	Data      T      `json:"data"`
	Timestamp string `json:"timestamp,omitempty"`
}

// Pagination is the data payload of list endpoints.
type Pagination[T any] struct {
	Items    []T `json:"items"`
	Total    int `json:"total"`
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
}

// TransportCode is the APIError code for requests that never got a response.
const TransportCode = -1

// APIError is returned for transport failures, HTTP error statuses and
// envelopes whose code is not the success code.
type APIError struct {
	// Code is the envelope code, the HTTP status, or TransportCode.
	Code    int
	Message string
	// Details holds the decoded error body when the server sent one.
	Details any
	Err     error
}

func (e *APIError) Error() string {
	if e == nil {
		return ""
	}
	if e.Message == "" {
		return fmt.Sprintf("api error %d", e.Code)
	}
	return fmt.Sprintf("api error %d: %s", e.Code, e.Message)
}

func (e *APIError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// envelope is BaseResponse with a nullable code so a missing code can be
// told apart from code 0.
type envelope struct {
	Code    *int            `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}
