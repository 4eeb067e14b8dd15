package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/doorman/internal/auth/service"
	"github.com/aussiebroadwan/doorman/pkg/authsdk"
	"github.com/aussiebroadwan/doorman/pkg/httpx"
	"github.com/aussiebroadwan/doorman/pkg/slogx"
)

type UsersHandler struct {
	AuthService *service.AuthService
}

// HandleRegister godoc
//
//	@Summary		Register User
//	@Description	Create an account for email with the given password
//	@Tags			Users
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			email		formData	string					true	"Account email"
//	@Param			password	formData	string					true	"Account password"
//	@Success		200			{object}	authsdk.EmailMessageResponse	"email, message"
//	@Failure		400			{object}	httpx.Message			"email already registered"
//	@Failure		500			{object}	httpx.Message			"internal error"
//	@Router			/users [post].
func (h *UsersHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if err := r.ParseForm(); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "invalid form data")
		return
	}

	email := r.PostFormValue("email")
	password := r.PostFormValue("password")
	if email == "" || password == "" {
		httpx.WriteMessage(w, http.StatusBadRequest, "email and password are required")
		return
	}

	if _, err := h.AuthService.RegisterUser(ctx, email, password); err != nil {
		if errors.Is(err, service.ErrUserAlreadyExists) {
			httpx.WriteMessage(w, http.StatusBadRequest, "email already registered")
			return
		}
		log.Error("register user failed", "err", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "internal error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authsdk.EmailMessageResponse{Email: email, Message: "user created"})
}

// HandleMe godoc
//
//	@Summary		Current User
//	@Description	Returns the user resolved by the configured authentication scheme
//	@Tags			Users
//	@Security		BasicAuth
//	@Security		SessionCookie
//	@Produce		json
//	@Success		200	{object}	authsdk.UserResponse	"id, email, created_at, updated_at"
//	@Failure		401	{object}	httpx.Message	"no credential"
//	@Failure		403	{object}	httpx.Message	"credential rejected"
//	@Failure		404	{object}	httpx.Message	"no authenticated user"
//	@Router			/api/v1/users/me [get].
func (h *UsersHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	u, ok := httpx.UserFromContext(r.Context())
	if !ok {
		httpx.WriteMessage(w, http.StatusNotFound, "Not found")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, newUserResponse(u))
}
