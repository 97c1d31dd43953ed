package adapter

import "errors"

// Sentinel errors forming the failure taxonomy of the transport layer.
// Every error returned by a [Gateway] wraps exactly one of these, so callers
// can branch with [errors.Is] without inspecting status codes.
var (
	// ErrNoResponse means the request was sent but no response reached the
	// client (connection refused, timeout, DNS failure).
	ErrNoResponse = errors.New("no response from server")
	// ErrRequest means the request could not be constructed or sent at all
	// (e.g. unserialisable payload, malformed URL).
	ErrRequest = errors.New("request error")
	// ErrUnauthorized maps HTTP 401. Observing it anywhere invalidates the
	// local session as a side effect of the failed call.
	ErrUnauthorized = errors.New("client unauthorized")
	// ErrForbidden maps HTTP 403.
	ErrForbidden = errors.New("access forbidden")
	// ErrValidation maps HTTP 400.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound maps HTTP 404.
	ErrNotFound = errors.New("resource not found")
	// ErrServer maps every 5xx response.
	ErrServer = errors.New("server error")
	// ErrUnknown maps any remaining non-2xx response.
	ErrUnknown = errors.New("unknown API error")
)
