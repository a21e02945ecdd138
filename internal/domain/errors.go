package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist. Handlers map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation before any collaborator call (e.g. missing destination,
// zero budget). Handlers map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrAlreadySaved is returned by the planner save flow when an identical
// (user, destination, plan) trip row already exists. It signals idempotent
// success, not failure: no duplicate row was written.
var ErrAlreadySaved = errors.New("trip already saved")

// ErrUnauthorized is returned when no valid session accompanies a request
// that requires one. Handlers map this to HTTP 401.
var ErrUnauthorized = errors.New("unauthorized")

// ErrEmptyReply is returned when an LLM collaborator responds successfully
// but with no usable text. User-visible handling is identical to ErrUpstream.
var ErrEmptyReply = errors.New("empty reply from model")

// ErrUpstream is returned when an outbound collaborator call fails at the
// transport level or with a non-success status. The operation is abandoned;
// nothing is retried and no partial state is persisted. Handlers map this
// to HTTP 502.
var ErrUpstream = errors.New("upstream error")
