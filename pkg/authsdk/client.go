package authsdk

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultSessionCookie is the cookie doorman uses unless configured otherwise.
const DefaultSessionCookie = "session_id"

// SDKClient is a client for the doorman authentication service.
// It provides access to unauthenticated operations and can create Sessions.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client

	// SessionCookie must match the server's AUTH_SESSION_COOKIE.
	SessionCookie string
}

// NewSDKClient creates a new client with the default session cookie name.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		SessionCookie: DefaultSessionCookie,
	}
}

// Register creates an account.
func (c *SDKClient) Register(ctx context.Context, email, password string) (*EmailMessageResponse, error) {
	resp, err := c.doForm(ctx, http.MethodPost, "/users", url.Values{
		"email":    {email},
		"password": {password},
	})
	if err != nil {
		return nil, err
	}

	var out EmailMessageResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// RequestPasswordReset issues a reset token for email. Any earlier token for
// the same account stops working.
func (c *SDKClient) RequestPasswordReset(ctx context.Context, email string) (*ResetTokenResponse, error) {
	resp, err := c.doForm(ctx, http.MethodPost, "/reset_password", url.Values{"email": {email}})
	if err != nil {
		return nil, err
	}

	var out ResetTokenResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdatePassword consumes resetToken and sets newPassword.
func (c *SDKClient) UpdatePassword(ctx context.Context, email, resetToken, newPassword string) (*EmailMessageResponse, error) {
	resp, err := c.doForm(ctx, http.MethodPut, "/reset_password", url.Values{
		"email":        {email},
		"reset_token":  {resetToken},
		"new_password": {newPassword},
	})
	if err != nil {
		return nil, err
	}

	var out EmailMessageResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Credential authenticates a request to a gated endpoint.
type Credential interface {
	Apply(r *http.Request)
}

// BasicCredential sends an HTTP Basic Authorization header.
type BasicCredential struct {
	Email    string
	Password string
}

func (b BasicCredential) Apply(r *http.Request) { r.SetBasicAuth(b.Email, b.Password) }

// Me returns the user the server's scheme resolves cred to. A nil cred
// sends the request without a credential.
func (c *SDKClient) Me(ctx context.Context, cred Credential) (*UserResponse, error) {
	var opts []func(*http.Request)
	if cred != nil {
		opts = append(opts, cred.Apply)
	}

	resp, err := c.doRequest(ctx, http.MethodGet, "/api/v1/users/me", nil, opts...)
	if err != nil {
		return nil, err
	}

	var out UserResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
