package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// User is the account record returned by the server on sign-in. The client
// only interprets the username; the rest of the record is carried opaquely
// so it can be persisted and restored exactly as the server supplied it.
type User struct {
	Username string `json:"username"`

	raw json.RawMessage
}

// ParseUser decodes a server-supplied user record. The record must be valid
// JSON and carry a username; anything else is treated as corrupt.
func ParseUser(data []byte) (*User, error) {
	var u User
	if err := json.Unmarshal(data, &u); err != nil {
		return nil, fmt.Errorf("malformed user record: %w", err)
	}
	if u.Username == "" {
		return nil, errors.New("user record has no username")
	}
	u.raw = append(json.RawMessage(nil), data...)
	return &u, nil
}

// Raw returns the record exactly as supplied by the server.
func (u *User) Raw() json.RawMessage {
	return u.raw
}
