package controllers

import "fmt"

// APIError is returned for any non-2xx response. The raw body is kept
// as received so callers can inspect the broker's error payload.
type APIError struct {
	Status int
	Body   []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status %d; body %s", e.Status, e.Body)
}

// TransportError is returned when the request never produced an HTTP
// response: DNS failure, timeout, connection refused.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %s", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
