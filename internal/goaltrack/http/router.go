package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/strivehq/goaltrack/internal/goaltrack/service"
	"github.com/strivehq/goaltrack/internal/goaltrack/store"
	"github.com/strivehq/goaltrack/pkg/httpx"
	"github.com/strivehq/goaltrack/pkg/jwtx"
	"github.com/strivehq/goaltrack/pkg/slogx"

	_ "github.com/strivehq/goaltrack/api/goaltrack" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	issuer       string
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store            store.Store
	TokenService     *service.TokenService
	UserService      *service.UserService
	TaskService      *service.TaskService
	ObjectiveService *service.ObjectiveService
}

func NewRouter(
	verifier jwtx.Verifier,
	issuer, buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		issuer:       issuer,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Default middleware chain applied to every route
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerUsers()
	r.registerTasks()
	r.registerObjectives()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			GoalTrack API
//	@version		0.1.0
//	@description	Task and goal tracking service: account registration and login issuing
//	@description	bearer tokens, owner-scoped task CRUD, and a read-only departmental
//	@description	objective catalog. Tokens are EdDSA-signed JWTs validated per request.
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerUsers() {
	// Credential endpoints get the strict per-IP limit (brute force prevention)
	r.Mux.Handle("POST /users/register",
		httpx.Chain(&RegisterHandler{UserService: r.UserService},
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	r.Mux.Handle("POST /users/login",
		httpx.Chain(&LoginHandler{TokenService: r.TokenService},
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	r.Mux.Handle("POST /users/change-password",
		httpx.Chain(&ChangePasswordHandler{UserService: r.UserService},
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerTasks() {
	authn := httpx.AuthnMiddleware(r.verifier, r.issuer)

	reads := func(h http.Handler) http.Handler {
		return httpx.Chain(h,
			authn,
			httpx.RequireAnyScope("tasks:read"),
			httpx.RateLimitByUser(httpx.LenientLimit),
		)
	}
	writes := func(h http.Handler) http.Handler {
		return httpx.Chain(h,
			authn,
			httpx.RequireAnyScope("tasks:write"),
			httpx.RateLimitByUser(httpx.LenientLimit),
		)
	}

	r.Mux.Handle("GET /tasks", reads(&TaskListHandler{TaskService: r.TaskService}))
	r.Mux.Handle("POST /tasks", writes(&TaskCreateHandler{TaskService: r.TaskService}))
	r.Mux.Handle("PUT /tasks/{id}", writes(&TaskUpdateHandler{TaskService: r.TaskService}))
	r.Mux.Handle("PUT /tasks/{id}/toggle", writes(&TaskToggleHandler{TaskService: r.TaskService}))
	r.Mux.Handle("DELETE /tasks/{id}", writes(&TaskDeleteHandler{TaskService: r.TaskService}))
}

func (r *Router) registerObjectives() {
	// The catalog is public and read-only
	r.Mux.Handle("GET /departmental-goals",
		httpx.Chain(&ObjectiveListHandler{ObjectiveService: r.ObjectiveService},
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store, r.verifier))
}
