package api

import "fmt"

// TransportError reports a request that never produced a usable
// response: connection failure, timeout, a non-2xx HTTP status, or a
// body that fails to decode. The request is not retried.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// RemoteError reports a completed request that the explorer answered
// with a non-success status: bad API key, invalid address format,
// rate limit exceeded, unknown contract address. Message carries the
// service's message field unmodified.
type RemoteError struct {
	Message string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("explorer API error: %s", e.Message)
}
