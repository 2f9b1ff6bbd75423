package common

// RequestIDHeaderName is the HTTP header carrying a per-request id
// for correlating client retries-by-hand with server logs.
const RequestIDHeaderName = "X-Request-Id"

// AuthorizationHeaderName carries the bearer token on protected requests.
const AuthorizationHeaderName = "Authorization"
