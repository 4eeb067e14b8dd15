package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/doorman/internal/auth/service"
	"github.com/aussiebroadwan/doorman/pkg/authsdk"
	"github.com/aussiebroadwan/doorman/pkg/httpx"
	"github.com/aussiebroadwan/doorman/pkg/slogx"
)

type ResetHandler struct {
	ResetService *service.ResetService
}

// HandleIssue godoc
//
//	@Summary		Request Password Reset
//	@Description	Issues a single-use reset token for email, replacing any earlier one
//	@Tags			Password Reset
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			email	formData	string				true	"Account email"
//	@Success		200		{object}	authsdk.ResetTokenResponse	"email, reset_token"
//	@Failure		403		{object}	httpx.Message		"unknown email"
//	@Router			/reset_password [post].
func (h *ResetHandler) HandleIssue(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		httpx.WriteMessage(w, http.StatusForbidden, "Forbidden")
		return
	}
	email := r.PostFormValue("email")

	token, err := h.ResetService.GetResetToken(ctx, email)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			httpx.WriteMessage(w, http.StatusForbidden, "Forbidden")
			return
		}
		slogx.FromContext(ctx).Error("issue reset token failed", "err", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "internal error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authsdk.ResetTokenResponse{Email: email, ResetToken: token})
}

// HandleUpdate godoc
//
//	@Summary		Complete Password Reset
//	@Description	Consumes a reset token and sets a new password
//	@Tags			Password Reset
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			email			formData	string					true	"Account email"
//	@Param			reset_token		formData	string					true	"Token from the reset request"
//	@Param			new_password	formData	string					true	"New password"
//	@Success		200				{object}	authsdk.EmailMessageResponse	"email, message"
//	@Failure		403				{object}	httpx.Message			"invalid reset token"
//	@Router			/reset_password [put].
func (h *ResetHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		httpx.WriteMessage(w, http.StatusForbidden, "Forbidden")
		return
	}
	email := r.PostFormValue("email")
	token := r.PostFormValue("reset_token")
	password := r.PostFormValue("new_password")

	if err := h.ResetService.UpdatePassword(ctx, token, password); err != nil {
		if errors.Is(err, service.ErrInvalidResetToken) {
			httpx.WriteMessage(w, http.StatusForbidden, "Forbidden")
			return
		}
		slogx.FromContext(ctx).Error("update password failed", "err", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "internal error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authsdk.EmailMessageResponse{Email: email, Message: "Password updated"})
}
