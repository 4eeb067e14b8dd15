package http

import (
	"net/http"

	"github.com/aussiebroadwan/doorman/pkg/authsdk"
	"github.com/aussiebroadwan/doorman/pkg/httpx"
)

// HandleWelcome godoc
//
//	@Summary	Welcome
//	@Tags		System
//	@Produce	json
//	@Success	200	{object}	httpx.Message	"Bienvenue"
//	@Router		/ [get].
func HandleWelcome(w http.ResponseWriter, _ *http.Request) {
	httpx.WriteMessage(w, http.StatusOK, "Bienvenue")
}

// HandleStatus godoc
//
//	@Summary		API Status
//	@Description	Public by default: listed in the excluded paths
//	@Tags			System
//	@Produce		json
//	@Success		200	{object}	authsdk.StatusResponse	"status"
//	@Router			/api/v1/status [get].
func HandleStatus(w http.ResponseWriter, _ *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, authsdk.StatusResponse{Status: "OK"})
}

// HandleUnauthorized always answers 401, for clients checking error handling.
func HandleUnauthorized(w http.ResponseWriter, _ *http.Request) {
	httpx.WriteMessage(w, http.StatusUnauthorized, "Unauthorized")
}

// HandleForbidden always answers 403.
func HandleForbidden(w http.ResponseWriter, _ *http.Request) {
	httpx.WriteMessage(w, http.StatusForbidden, "Forbidden")
}
