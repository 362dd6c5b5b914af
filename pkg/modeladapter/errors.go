package modeladapter

import "fmt"

// AuthError indicates the request could not be authenticated. StatusCode is
// zero when the key was missing locally and no request was sent; otherwise it
// is the HTTP status the endpoint answered with (401 or 403).
type AuthError struct {
	Reason     string
	StatusCode int
}

func (e *AuthError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("auth: %s", e.Reason)
	}
	return fmt.Sprintf("auth: status %d: %s", e.StatusCode, e.Reason)
}

// NetworkError indicates the call could not be completed: the transport
// failed, the response body could not be decoded, or the endpoint answered
// with an unexpected status.
type NetworkError struct {
	Op         string
	StatusCode int
	Body       string
	Err        error
}

func (e *NetworkError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s %d: %s", e.Op, e.StatusCode, e.Body)
	default:
		return e.Op
	}
}

func (e *NetworkError) Unwrap() error { return e.Err }
