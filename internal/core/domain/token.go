package domain

import "errors"

// Token failures are distinguished internally for logging and metrics, but
// surfaced identically to clients as an unauthenticated response.
var ErrTokenInvalid = errors.New("token invalid")
var ErrTokenExpired = errors.New("token expired")
