package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/doorman/internal/auth/metrics"
	"github.com/aussiebroadwan/doorman/internal/auth/scheme"
	"github.com/aussiebroadwan/doorman/internal/auth/service"
	"github.com/aussiebroadwan/doorman/internal/auth/store"
	"github.com/aussiebroadwan/doorman/pkg/httpx"
	"github.com/aussiebroadwan/doorman/pkg/slogx"

	_ "github.com/aussiebroadwan/doorman/api/doorman" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// APIPrefix is the subtree gated by the configured scheme.
const APIPrefix = "/api/v1/"

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store   store.Store
	scheme  scheme.Scheme
	metrics *metrics.Metrics

	AuthService   *service.AuthService
	ResetService  *service.ResetService
	SessionCookie string
}

func NewRouter(
	sch scheme.Scheme,
	buildVersion string,
	st store.Store,
	m *metrics.Metrics,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:           http.NewServeMux(),
		buildVersion:  buildVersion,
		startTime:     time.Now(),
		store:         st,
		scheme:        sch,
		metrics:       m,
		logger:        logger,
		SessionCookie: scheme.DefaultSessionCookie,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.Mux.HandleFunc("GET /{$}", HandleWelcome)

	r.registerUsers()
	r.registerSessions()
	r.registerReset()
	r.registerAPI()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Doorman Authentication API
//	@version		0.1.0
//	@description	User accounts, password login with server-side sessions, and single-use password reset.
//	@description
//	@description	Routes under /api/v1 are gated by the configured scheme (none, basic or session) unless listed in the excluded paths.
//
//	@contact.name	AussieBroadWAN Team
//	@contact.url	https://github.com/aussiebroadwan/doorman
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http https
//
//	@securityDefinitions.basic	BasicAuth
//
//	@securityDefinitions.apikey	SessionCookie
//	@in							cookie
//	@name						session_id
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerUsers() {
	h := &UsersHandler{AuthService: r.AuthService}
	r.Mux.HandleFunc("POST /users", h.HandleRegister)
}

func (r *Router) registerSessions() {
	h := &SessionsHandler{AuthService: r.AuthService, CookieName: r.SessionCookie}

	r.Mux.HandleFunc("POST /sessions", h.HandleLogin)
	r.Mux.HandleFunc("DELETE /sessions", h.HandleLogout)
	r.Mux.HandleFunc("GET /profile", h.HandleProfile)
}

func (r *Router) registerReset() {
	h := &ResetHandler{ResetService: r.ResetService}

	r.Mux.HandleFunc("POST /reset_password", h.HandleIssue)
	r.Mux.HandleFunc("PUT /reset_password", h.HandleUpdate)
}

// registerAPI mounts the scheme-gated subtree. Every request under the
// prefix goes through the scheme, including ones that end up 404.
func (r *Router) registerAPI() {
	users := &UsersHandler{AuthService: r.AuthService}

	api := http.NewServeMux()
	for _, p := range []string{"status", "status/{$}"} {
		api.HandleFunc("GET "+APIPrefix+p, HandleStatus)
	}
	for _, p := range []string{"unauthorized", "unauthorized/{$}"} {
		api.HandleFunc("GET "+APIPrefix+p, HandleUnauthorized)
	}
	for _, p := range []string{"forbidden", "forbidden/{$}"} {
		api.HandleFunc("GET "+APIPrefix+p, HandleForbidden)
	}
	api.HandleFunc("GET "+APIPrefix+"users/me", users.HandleMe)

	r.Mux.Handle(APIPrefix, httpx.Chain(api, httpx.AuthnMiddleware(r.scheme, r.metrics)))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
	r.Mux.Handle("GET /metrics", r.metrics.Handler())
}
