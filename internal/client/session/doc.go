// Package session owns the client's identity state: who is signed in, the
// bearer token proving it, and the durable copy that survives restarts.
//
// # Overview
//
// The Store exposes three mutations — Restore, Login, Logout — and a State
// snapshot for consumers (views, the route guard). On every observable state
// the user and the token are either both set or both absent; a snapshot never
// shows one without the other.
//
// Persistence is a logical pair of keys in the local sqlite database,
// written together and purged together inside one transaction. A pair that
// fails verification on restore (missing half, unparseable user record) is
// purged silently and the session starts unauthenticated.
//
// # Ordering
//
// Restore must finish before any consumer makes an authorize/redirect
// decision; the application wires this by restoring inside construction,
// before the command loop starts. The loading flag in State covers the
// window until then.
//
// See Also
//
//   - Transport:  api.Client
//   - Validation: validation.Check
//   - Gate:       guard.Guard
package session
