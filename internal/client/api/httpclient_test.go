package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/healthmate/internal/client/locale"
	"github.com/dmitrijs2005/healthmate/internal/client/models"
	"github.com/dmitrijs2005/healthmate/internal/common"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHTTPClient(srv.URL, "en", 5*time.Second)
}

func TestLogin_Success(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	var gotRequestID string

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotRequestID = r.Header.Get(common.RequestIDHeaderName)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"tok123","user":{"username":"asha","plan":"basic"}}`))
	})

	res, err := c.Login(context.Background(), "asha", "secret1")
	require.NoError(t, err)

	require.Equal(t, "/auth/login", gotPath)
	require.NotEmpty(t, gotRequestID)
	require.Equal(t, map[string]any{"username": "asha", "password": "secret1"}, gotBody)

	require.Equal(t, "tok123", res.Token)
	// The user record passes through exactly as supplied.
	require.JSONEq(t, `{"username":"asha","plan":"basic"}`, string(res.User))
}

func TestSignup_PayloadShaping(t *testing.T) {
	var gotBody map[string]any

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/signup", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"access_token":"t","user":{"username":"asha"}}`))
	})

	req := NewSignupRequest(models.Credentials{
		Username:        "asha",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		Email:           "asha@example.com",
		FullName:        "Asha Rao Patel",
		Age:             "34",
	})
	_, err := c.Signup(context.Background(), req)
	require.NoError(t, err)

	require.Equal(t, "Asha", gotBody["firstName"])
	require.Equal(t, "Rao Patel", gotBody["lastName"])
	require.Equal(t, float64(34), gotBody["age"])
	require.Equal(t, models.DefaultGender, gotBody["gender"])
	require.NotContains(t, gotBody, "confirmPassword")
	require.NotContains(t, gotBody, "fullName")
}

func TestNewSignupRequest_SingleTokenNameAndBadAge(t *testing.T) {
	req := NewSignupRequest(models.Credentials{
		Username: "asha",
		FullName: "Asha",
		Age:      "thirty-four",
		Gender:   "female",
	})
	require.Equal(t, "Asha", req.FirstName)
	require.Equal(t, "Asha", req.LastName)
	require.Nil(t, req.Age)
	require.Equal(t, "female", req.Gender)
}

func TestLogin_RejectedDetailString(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"Incorrect username or password"}`))
	})

	_, err := c.Login(context.Background(), "asha", "wrong")
	var rErr *RejectedError
	require.ErrorAs(t, err, &rErr)
	require.Equal(t, "Incorrect username or password", rErr.Message)
}

func TestLogin_RejectedDetailList(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"detail":[
			{"loc":["body","email"],"msg":"invalid email"},
			{"loc":["body","age"],"msg":"not an integer"}
		]}`))
	})

	_, err := c.Login(context.Background(), "asha", "secret1")
	var rErr *RejectedError
	require.ErrorAs(t, err, &rErr)
	require.Equal(t, "email: invalid email, age: not an integer", rErr.Message)
}

func TestLogin_RejectedMessageField(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"User already exists"}`))
	})

	_, err := c.Login(context.Background(), "asha", "secret1")
	var rErr *RejectedError
	require.ErrorAs(t, err, &rErr)
	require.Equal(t, "User already exists", rErr.Message)
}

func TestLogin_RejectedUnreadableBodyUsesFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`<html>nope</html>`))
	}))
	t.Cleanup(srv.Close)

	for _, lang := range []string{"en", "hi"} {
		c := NewHTTPClient(srv.URL, lang, 5*time.Second)
		_, err := c.Login(context.Background(), "asha", "secret1")
		var rErr *RejectedError
		require.ErrorAs(t, err, &rErr)
		require.Equal(t, locale.AuthFailed(lang), rErr.Message)
	}
}

func TestLogin_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewHTTPClient(url, "en", time.Second)
	_, err := c.Login(context.Background(), "asha", "secret1")
	require.ErrorIs(t, err, common.ErrUnavailable)
}

func TestLogin_IncompleteSuccessBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"access_token":"","user":{}}`))
	})

	_, err := c.Login(context.Background(), "asha", "secret1")
	require.Error(t, err)
}

func TestRecommendations_SendsBearerToken(t *testing.T) {
	var gotAuth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/doctors/recommendations", r.URL.Path)
		gotAuth = r.Header.Get(common.AuthorizationHeaderName)
		_, _ = w.Write([]byte(`[{"doctor":"Dr. Rao"},{"doctor":"Dr. Patel"}]`))
	})

	records, err := c.Recommendations(context.Background(), "tok123")
	require.NoError(t, err)
	require.Equal(t, "Bearer tok123", gotAuth)
	require.Len(t, records, 2)
}

func TestPrescriptions_Unauthorized(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"token expired"}`))
	})

	_, err := c.Prescriptions(context.Background(), "stale")
	require.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestPing(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/health", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	})
	require.NoError(t, c.Ping(context.Background()))

	down := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	require.ErrorIs(t, down.Ping(context.Background()), common.ErrUnavailable)
}
