package authsdk

import (
	"context"
	"errors"
	"net/http"
	"net/url"
)

// Session is a logged-in user's server-side session, identified by the
// token the server set in the session cookie.
type Session struct {
	client *SDKClient

	Email string
	Token string
}

// Login checks the password and returns the new session. Logging in again
// replaces the account's previous session on the server.
func (c *SDKClient) Login(ctx context.Context, email, password string) (*Session, error) {
	resp, err := c.doForm(ctx, http.MethodPost, "/sessions", url.Values{
		"email":    {email},
		"password": {password},
	})
	if err != nil {
		return nil, err
	}

	var token string
	for _, ck := range resp.Cookies() {
		if ck.Name == c.SessionCookie {
			token = ck.Value
		}
	}

	var out EmailMessageResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	if token == "" {
		return nil, errors.New("login succeeded but no session cookie was set")
	}

	return &Session{client: c, Email: out.Email, Token: token}, nil
}

// NewSessionFromToken wraps a session token obtained elsewhere.
func (c *SDKClient) NewSessionFromToken(token string) *Session {
	return &Session{client: c, Token: token}
}

// Apply attaches the session cookie, so a Session is a Credential for the
// session scheme.
func (s *Session) Apply(r *http.Request) {
	r.AddCookie(&http.Cookie{Name: s.client.SessionCookie, Value: s.Token})
}

// Profile returns the email of the session's owner.
func (s *Session) Profile(ctx context.Context) (*EmailResponse, error) {
	resp, err := s.client.doRequest(ctx, http.MethodGet, "/profile", nil, s.Apply)
	if err != nil {
		return nil, err
	}

	var out EmailResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout destroys the session on the server. The server answers with a
// redirect to "/", which is not followed.
func (s *Session) Logout(ctx context.Context) error {
	noFollow := *s.client.HTTPClient
	noFollow.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}
	c := *s.client
	c.HTTPClient = &noFollow

	resp, err := c.doRequest(ctx, http.MethodDelete, "/sessions", nil, s.Apply)
	if err != nil {
		return err
	}
	return checkStatus(resp, http.StatusFound)
}
