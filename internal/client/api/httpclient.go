package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/healthmate/internal/client/locale"
	"github.com/dmitrijs2005/healthmate/internal/common"
	"github.com/google/uuid"
)

const (
	loginPath           = "/auth/login"
	signupPath          = "/auth/signup"
	recommendationsPath = "/doctors/recommendations"
	prescriptionsPath   = "/prescriptions/history"
	healthPath          = "/health"
)

// HTTPClient talks JSON over HTTP to the healthmate backend. Transport
// failures are mapped to common.ErrUnavailable; non-success responses become
// *RejectedError with a message normalized from the server's error shape.
type HTTPClient struct {
	baseURL string
	lang    string
	http    *http.Client
}

// NewHTTPClient builds a client for the given base URL. lang selects the
// fallback message language when a response carries no usable message.
func NewHTTPClient(baseURL, lang string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		lang:    lang,
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (*AuthResult, error) {
	payload := struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}{Username: username, Password: password}
	return c.submit(ctx, loginPath, payload)
}

func (c *HTTPClient) Signup(ctx context.Context, req SignupRequest) (*AuthResult, error) {
	return c.submit(ctx, signupPath, req)
}

// submit issues exactly one request to an auth endpoint. There is no retry:
// this is an interactive operation and retrying would mask input errors the
// user can correct.
func (c *HTTPClient) submit(ctx context.Context, path string, payload any) (*AuthResult, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, common.ErrUnavailable
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, common.ErrUnavailable
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &RejectedError{Message: c.extractMessage(data)}
	}

	var sb struct {
		AccessToken string          `json:"access_token"`
		User        json.RawMessage `json:"user"`
	}
	if err := json.Unmarshal(data, &sb); err != nil {
		return nil, fmt.Errorf("malformed auth response: %w", err)
	}
	if sb.AccessToken == "" || len(sb.User) == 0 {
		return nil, errors.New("incomplete auth response")
	}

	return &AuthResult{Token: sb.AccessToken, User: sb.User}, nil
}

func (c *HTTPClient) Recommendations(ctx context.Context, token string) ([]json.RawMessage, error) {
	return c.getRecords(ctx, recommendationsPath, token)
}

func (c *HTTPClient) Prescriptions(ctx context.Context, token string) ([]json.RawMessage, error) {
	return c.getRecords(ctx, prescriptionsPath, token)
}

func (c *HTTPClient) getRecords(ctx context.Context, path, token string) ([]json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set(common.AuthorizationHeaderName, "Bearer "+token)
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, common.ErrUnavailable
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, common.ErrorUnauthorized
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		data, _ := io.ReadAll(resp.Body)
		return nil, &RejectedError{Message: c.extractMessage(data)}
	}

	var records []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("malformed records response: %w", err)
	}
	return records, nil
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+healthPath, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return common.ErrUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return common.ErrUnavailable
	}
	return nil
}

// extractMessage normalizes the server's error body into one display string.
// Known shapes, tried in order:
//
//	{"detail": "plain message"}
//	{"detail": [{"loc": [...,"field"], "msg": "..."}, ...]}  -> "field: msg, field: msg"
//	{"message": "plain message"}
//
// Anything else falls back to a generic message in the configured language.
func (c *HTTPClient) extractMessage(body []byte) string {
	var eb struct {
		Detail  json.RawMessage `json:"detail"`
		Message string          `json:"message"`
	}
	if err := json.Unmarshal(body, &eb); err == nil {
		if len(eb.Detail) > 0 {
			var s string
			if json.Unmarshal(eb.Detail, &s) == nil && s != "" {
				return s
			}

			var items []struct {
				Loc []any  `json:"loc"`
				Msg string `json:"msg"`
			}
			if json.Unmarshal(eb.Detail, &items) == nil && len(items) > 0 {
				parts := make([]string, 0, len(items))
				for _, it := range items {
					field := ""
					if len(it.Loc) > 0 {
						field = fmt.Sprint(it.Loc[len(it.Loc)-1])
					}
					parts = append(parts, fmt.Sprintf("%s: %s", field, it.Msg))
				}
				return strings.Join(parts, ", ")
			}
		}
		if eb.Message != "" {
			return eb.Message
		}
	}
	return locale.AuthFailed(c.lang)
}
