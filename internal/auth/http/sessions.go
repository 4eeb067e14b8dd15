package http

import (
	"net/http"

	"github.com/aussiebroadwan/doorman/internal/auth/domain"
	"github.com/aussiebroadwan/doorman/internal/auth/scheme"
	"github.com/aussiebroadwan/doorman/internal/auth/service"
	"github.com/aussiebroadwan/doorman/pkg/authsdk"
	"github.com/aussiebroadwan/doorman/pkg/httpx"
	"github.com/aussiebroadwan/doorman/pkg/slogx"
)

type SessionsHandler struct {
	AuthService *service.AuthService
	CookieName  string
}

func (h *SessionsHandler) cookieName() string {
	if h.CookieName == "" {
		return scheme.DefaultSessionCookie
	}
	return h.CookieName
}

// HandleLogin godoc
//
//	@Summary		Log In
//	@Description	Checks the password and sets a session cookie. Any failure is reported the same way.
//	@Tags			Sessions
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			email		formData	string					true	"Account email"
//	@Param			password	formData	string					true	"Account password"
//	@Success		200			{object}	authsdk.EmailMessageResponse	"email, message"
//	@Failure		401			{object}	httpx.Message			"invalid login"
//	@Failure		500			{object}	httpx.Message			"internal error"
//	@Router			/sessions [post].
func (h *SessionsHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if err := r.ParseForm(); err != nil {
		httpx.WriteMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	email := r.PostFormValue("email")
	password := r.PostFormValue("password")

	valid, err := h.AuthService.ValidLogin(ctx, email, password)
	if err != nil {
		log.Error("login check failed", "err", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "internal error")
		return
	}
	if !valid {
		httpx.WriteMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	token, ok, err := h.AuthService.CreateSession(ctx, email)
	if err != nil {
		log.Error("create session failed", "err", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "internal error")
		return
	}
	if !ok {
		// Account vanished between the password check and the session write.
		httpx.WriteMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName(),
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	httpx.WriteJSON(w, http.StatusOK, authsdk.EmailMessageResponse{Email: email, Message: "logged in"})
}

// HandleLogout godoc
//
//	@Summary		Log Out
//	@Description	Destroys the caller's session and redirects to the root
//	@Tags			Sessions
//	@Security		SessionCookie
//	@Success		302
//	@Failure		403	{object}	httpx.Message	"unknown session"
//	@Router			/sessions [delete].
func (h *SessionsHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	u, ok := h.sessionUser(w, r)
	if !ok {
		return
	}

	if err := h.AuthService.DestroySession(ctx, u.ID); err != nil {
		log.Error("destroy session failed", "err", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "internal error")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName(),
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/", http.StatusFound)
}

// HandleProfile godoc
//
//	@Summary		Profile
//	@Description	Returns the email of the session's owner
//	@Tags			Sessions
//	@Security		SessionCookie
//	@Produce		json
//	@Success		200	{object}	authsdk.EmailResponse	"email"
//	@Failure		403	{object}	httpx.Message	"unknown session"
//	@Router			/profile [get].
func (h *SessionsHandler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	u, ok := h.sessionUser(w, r)
	if !ok {
		return
	}
	httpx.WriteJSON(w, http.StatusOK, authsdk.EmailResponse{Email: u.Email})
}

// sessionUser resolves the session cookie. On failure it has already written
// the response.
func (h *SessionsHandler) sessionUser(w http.ResponseWriter, r *http.Request) (domain.User, bool) {
	ctx := r.Context()

	c, err := r.Cookie(h.cookieName())
	if err != nil {
		httpx.WriteMessage(w, http.StatusForbidden, "Forbidden")
		return domain.User{}, false
	}

	u, ok, err := h.AuthService.GetUserFromSession(ctx, c.Value)
	if err != nil {
		slogx.FromContext(ctx).Error("session lookup failed", "err", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "internal error")
		return domain.User{}, false
	}
	if !ok {
		httpx.WriteMessage(w, http.StatusForbidden, "Forbidden")
		return domain.User{}, false
	}
	return u, true
}
