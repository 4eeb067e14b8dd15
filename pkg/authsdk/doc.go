/*
Package authsdk is a Go client for the doorman authentication service, along
with the JSON types its endpoints return.

# SDKClient vs Session

  - SDKClient: account operations that need no session (register, log in,
    password reset, health)
  - Session: operations carried by a session cookie (profile, log out, the
    /api/v1 endpoints under the session scheme)

	client := authsdk.NewSDKClient("http://localhost:8080")

	_, err := client.Register(ctx, "bob@example.com", "hunter2")

	session, err := client.Login(ctx, "bob@example.com", "hunter2")
	profile, err := session.Profile(ctx)
	err = session.Logout(ctx)

# Password Reset

	reset, err := client.RequestPasswordReset(ctx, "bob@example.com")
	_, err = client.UpdatePassword(ctx, "bob@example.com", reset.ResetToken, "n3w")

Reset tokens are single use; a second UpdatePassword with the same token fails
with a 403 APIError.

# Gated Endpoints

The /api/v1 subtree is gated by whichever scheme the server runs. Pass the
matching Credential:

	me, err := client.Me(ctx, authsdk.BasicCredential{Email: e, Password: p})
	me, err := client.Me(ctx, session)

# Error Handling

Non-success responses come back as *APIError carrying the status code and
the server's message:

	var apiErr *authsdk.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusForbidden {
		// unknown session, bad reset token, ...
	}
*/
package authsdk
