package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/sitewatch/sitewatch/internal/platform/domain"
	"github.com/sitewatch/sitewatch/internal/platform/service"
	"github.com/sitewatch/sitewatch/internal/platform/store"
	"github.com/sitewatch/sitewatch/pkg/httpx"
	"github.com/sitewatch/sitewatch/pkg/jwtx"
	"github.com/sitewatch/sitewatch/pkg/slogx"

	_ "github.com/sitewatch/sitewatch/api" // Swagger docs
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store  store.Store
	actors *ActorResolver

	TenantService      *service.TenantService
	SignupService      *service.SignupService
	AuthService        *service.AuthService
	InviteService      *service.InviteService
	ObservationService *service.ObservationService
	LocationService    *service.LocationService
	ReportService      *service.ReportService
	DemoService        *service.DemoService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		actors:       &ActorResolver{Store: st},
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAccounts()
	r.registerInvites()
	r.registerObservations()
	r.registerLocations()
	r.registerReports()
	r.registerDemoRequests()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			SiteWatch Platform API
//	@version		0.1.0
//	@description	Multi-tenant workplace safety observation tracking: organizations sign up,
//	@description	invite users into roles, log observations, and drive them through a
//	@description	rectify-and-verify workflow with dashboards and CSV export.
//
//	@contact.name				SiteWatch Team
//	@contact.url				https://github.com/sitewatch/sitewatch
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
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

// secured wraps an authenticated tenant endpoint: bearer token first, then a
// per-user rate limit, then the per-route metrics recorder.
func (r *Router) secured(pattern string, h http.Handler, limit httpx.RateLimitConfig, extra ...httpx.Middleware) http.Handler {
	mws := []httpx.Middleware{httpx.AuthnMiddleware(r.verifier)}
	mws = append(mws, extra...)
	mws = append(mws, httpx.RateLimitByUser(limit))
	return withMetrics(pattern, httpx.Chain(h, mws...))
}

func (r *Router) registerAccounts() {
	// POST /signup - strict rate limit by IP (account provisioning)
	signupHandler := &SignupHandler{SignupService: r.SignupService, AuthService: r.AuthService}
	r.Mux.Handle("POST /v1/signup",
		withMetrics("/v1/signup", httpx.Chain(signupHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		)),
	)

	// POST /login - strict rate limit by IP (authentication attempts)
	loginHandler := &LoginHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /v1/login",
		withMetrics("/v1/login", httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		)),
	)

	// GET /organization - authenticated read
	orgHandler := &OrganizationHandler{TenantService: r.TenantService, Actors: r.actors}
	r.Mux.Handle("GET /v1/organization",
		r.secured("/v1/organization", orgHandler, httpx.LenientLimit),
	)

	r.registerMembers()
}

func (r *Router) registerMembers() {
	listHandler := &MemberListHandler{TenantService: r.TenantService, Actors: r.actors}
	rolesHandler := &MemberRolesHandler{TenantService: r.TenantService, Actors: r.actors}
	deactivateHandler := &MemberDeactivateHandler{TenantService: r.TenantService, Actors: r.actors}

	// Member administration is manager-only; the claims gate keeps
	// non-managers from reaching the handlers at all.
	manager := httpx.RequireAnyRole(string(domain.RoleManager))

	r.Mux.Handle("GET /v1/members",
		r.secured("/v1/members", listHandler, httpx.LenientLimit, manager),
	)
	r.Mux.Handle("POST /v1/members/{id}/roles",
		r.secured("/v1/members/{id}/roles", rolesHandler, httpx.ModerateLimit, manager),
	)
	r.Mux.Handle("POST /v1/members/{id}/deactivate",
		r.secured("/v1/members/{id}/deactivate", deactivateHandler, httpx.ModerateLimit, manager),
	)
}

func (r *Router) registerInvites() {
	mintHandler := &InviteMintHandler{InviteService: r.InviteService, Actors: r.actors}
	listHandler := &InviteListHandler{InviteService: r.InviteService, Actors: r.actors}
	acceptHandler := &InviteAcceptHandler{InviteService: r.InviteService, AuthService: r.AuthService}

	// Minting and listing are manager-only; the service re-checks against
	// the user row in case a role changed after the token was issued.
	manager := httpx.RequireAnyRole(string(domain.RoleManager))
	r.Mux.Handle("POST /v1/invites",
		r.secured("/v1/invites", mintHandler, httpx.ModerateLimit, manager),
	)
	r.Mux.Handle("GET /v1/invites",
		r.secured("/v1/invites", listHandler, httpx.ModerateLimit, manager),
	)

	// POST /invites/accept - strict rate limit by IP (public signup endpoint)
	r.Mux.Handle("POST /v1/invites/accept",
		withMetrics("/v1/invites/accept", httpx.Chain(acceptHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		)),
	)
}

func (r *Router) registerObservations() {
	createHandler := &ObservationCreateHandler{ObservationService: r.ObservationService, Actors: r.actors}
	listHandler := &ObservationListHandler{ObservationService: r.ObservationService, Actors: r.actors}
	getHandler := &ObservationGetHandler{ObservationService: r.ObservationService, Actors: r.actors}
	rectifyHandler := &ObservationRectifyHandler{ObservationService: r.ObservationService, Actors: r.actors}
	verifyHandler := &ObservationVerifyHandler{ObservationService: r.ObservationService, Actors: r.actors}
	archiveHandler := &ObservationArchiveHandler{ObservationService: r.ObservationService, Actors: r.actors}
	restoreHandler := &ObservationArchiveHandler{ObservationService: r.ObservationService, Actors: r.actors, Restore: true}
	deleteHandler := &ObservationDeleteHandler{ObservationService: r.ObservationService, Actors: r.actors}

	r.Mux.Handle("POST /v1/observations",
		r.secured("/v1/observations", createHandler, httpx.ModerateLimit),
	)
	r.Mux.Handle("GET /v1/observations",
		r.secured("/v1/observations", listHandler, httpx.LenientLimit),
	)
	r.Mux.Handle("GET /v1/observations/{id}",
		r.secured("/v1/observations/{id}", getHandler, httpx.LenientLimit),
	)
	r.Mux.Handle("POST /v1/observations/{id}/rectify",
		r.secured("/v1/observations/{id}/rectify", rectifyHandler, httpx.ModerateLimit),
	)
	r.Mux.Handle("POST /v1/observations/{id}/verify",
		r.secured("/v1/observations/{id}/verify", verifyHandler, httpx.ModerateLimit),
	)
	r.Mux.Handle("POST /v1/observations/{id}/archive",
		r.secured("/v1/observations/{id}/archive", archiveHandler, httpx.ModerateLimit),
	)
	r.Mux.Handle("POST /v1/observations/{id}/restore",
		r.secured("/v1/observations/{id}/restore", restoreHandler, httpx.ModerateLimit),
	)

	// Hard delete is a platform-operator escape hatch, not a tenant feature.
	r.Mux.Handle("DELETE /v1/observations/{id}",
		r.secured("/v1/observations/{id}", deleteHandler, httpx.ModerateLimit,
			httpx.RequireSuperuser(),
		),
	)
}

func (r *Router) registerLocations() {
	createHandler := &LocationCreateHandler{LocationService: r.LocationService, Actors: r.actors}
	listHandler := &LocationListHandler{LocationService: r.LocationService, Actors: r.actors}

	r.Mux.Handle("POST /v1/locations",
		r.secured("/v1/locations", createHandler, httpx.ModerateLimit),
	)
	r.Mux.Handle("GET /v1/locations",
		r.secured("/v1/locations", listHandler, httpx.LenientLimit),
	)
}

func (r *Router) registerReports() {
	dashboardHandler := &DashboardHandler{ReportService: r.ReportService, Actors: r.actors}
	exportHandler := &ExportHandler{ReportService: r.ReportService, Actors: r.actors}

	r.Mux.Handle("GET /v1/dashboard",
		r.secured("/v1/dashboard", dashboardHandler, httpx.LenientLimit),
	)
	r.Mux.Handle("GET /v1/exports/observations.csv",
		r.secured("/v1/exports/observations.csv", exportHandler, httpx.ModerateLimit),
	)
}

func (r *Router) registerDemoRequests() {
	submitHandler := &DemoRequestHandler{DemoService: r.DemoService}
	listHandler := &DemoListHandler{DemoService: r.DemoService, Actors: r.actors}

	// POST /demo-requests - public marketing form, moderate rate limit by IP
	r.Mux.Handle("POST /v1/demo-requests",
		withMetrics("/v1/demo-requests", httpx.Chain(submitHandler,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		)),
	)
	r.Mux.Handle("GET /v1/demo-requests",
		r.secured("/v1/demo-requests", listHandler, httpx.ModerateLimit,
			httpx.RequireSuperuser(),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /metrics", promhttp.Handler())
}
