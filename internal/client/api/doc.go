// Package api contains the client-side API surface for the healthmate
// backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Client interface): Login/Signup
//     against the identity provider, bearer-token record fetches
//     (Recommendations, Prescriptions), and a liveness probe (Ping).
//  2. A concrete HTTP implementation (see HTTPClient) that builds the wire
//     payloads, tags each request with an id, and normalizes the server's
//     error shapes into displayable values.
//
// # Error Handling
//
// Network-level failures are exposed as the sentinel common.ErrUnavailable;
// a non-success response with a message becomes *RejectedError; a rejected
// bearer token on a record fetch becomes common.ErrorUnauthorized. Callers
// match sentinels with errors.Is and *RejectedError with errors.As.
//
// Auth responses pass the server's user record through untouched; shaping of
// the signup payload (name splitting, age parsing, gender default) happens in
// NewSignupRequest before the request is issued.
package api
