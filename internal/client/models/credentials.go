package models

import (
	"strconv"
	"strings"
)

// DefaultGender is used when the signup form leaves the gender field empty.
const DefaultGender = "other"

// Credentials is the ephemeral sign-in/sign-up form input. It is never
// persisted; the password fields should be wiped by the caller after use.
//
// Email, FullName, Age, Gender and ConfirmPassword are only meaningful for
// signup. ConfirmPassword is checked locally and never transmitted.
type Credentials struct {
	Username        string
	Password        string
	Email           string
	FullName        string
	Age             string // free text, see ParseAge
	Gender          string
	ConfirmPassword string
}

// GenderOrDefault returns the entered gender, or DefaultGender if unset.
func (c Credentials) GenderOrDefault() string {
	if strings.TrimSpace(c.Gender) == "" {
		return DefaultGender
	}
	return c.Gender
}

// SplitFullName splits a full name into the first/last parts the signup
// endpoint expects. A single-token name is duplicated into both parts;
// otherwise the first token becomes the first name and the remaining tokens,
// joined by spaces, the last name.
func SplitFullName(fullName string) (firstName, lastName string) {
	parts := strings.Fields(fullName)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], parts[0]
	default:
		return parts[0], strings.Join(parts[1:], " ")
	}
}

// ParseAge parses a free-text age field. It returns nil if the text is empty
// or does not parse as an integer.
func ParseAge(s string) *int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &n
}
