package api

import (
	"context"
	"encoding/json"

	"github.com/dmitrijs2005/healthmate/internal/client/models"
)

// AuthResult is a successful identity-provider response: the bearer token and
// the user record exactly as supplied by the server, with no reshaping.
type AuthResult struct {
	Token string
	User  json.RawMessage
}

// SignupRequest is the outbound sign-up payload.
type SignupRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Age       *int   `json:"age"`
	Gender    string `json:"gender"`
}

// NewSignupRequest shapes form credentials into the wire payload: the full
// name is split into first/last, the free-text age becomes an integer or
// null, and an unset gender falls back to the fixed default. The confirm
// password never leaves the process.
func NewSignupRequest(c models.Credentials) SignupRequest {
	firstName, lastName := models.SplitFullName(c.FullName)
	return SignupRequest{
		Username:  c.Username,
		Email:     c.Email,
		Password:  c.Password,
		FirstName: firstName,
		LastName:  lastName,
		Age:       models.ParseAge(c.Age),
		Gender:    c.GenderOrDefault(),
	}
}

// Client is the API contract against the healthmate backend.
type Client interface {
	Close() error
	Login(ctx context.Context, username, password string) (*AuthResult, error)
	Signup(ctx context.Context, req SignupRequest) (*AuthResult, error)
	Recommendations(ctx context.Context, token string) ([]json.RawMessage, error)
	Prescriptions(ctx context.Context, token string) ([]json.RawMessage, error)
	Ping(ctx context.Context) error
}
