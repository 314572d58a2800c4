// Package http wires the service layer to the HTTP surface: routing,
// request decoding, auth and rate-limit middleware, and the error-to-status
// mapping.
package http

import (
	"log/slog"
	"net/http"

	"github.com/toolshed/handyman/internal/handyman/service"
	"github.com/toolshed/handyman/internal/handyman/store"
	"github.com/toolshed/handyman/pkg/httpx"
	"github.com/toolshed/handyman/pkg/jwtx"
	"github.com/toolshed/handyman/pkg/slogx"
)

// RouterConfig carries everything the router needs to assemble the full
// handler tree.
type RouterConfig struct {
	Logger   *slog.Logger
	Store    store.Store
	Verifier jwtx.Verifier
	JWKS     jwtx.JWKS

	Accounts  *service.AccountService
	Projects  *service.ProjectService
	Materials *service.MaterialService
	Laborers  *service.LaborerService
}

// NewRouter builds the complete handler tree. Credential endpoints get the
// strict per-IP limit; everything behind auth is limited per user.
func NewRouter(cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()

	accounts := NewAccountHandlers(cfg.Accounts)
	projects := NewProjectHandlers(cfg.Projects)
	materials := NewMaterialHandlers(cfg.Materials)
	laborers := NewLaborerHandlers(cfg.Laborers)
	meta := NewMetaHandlers(cfg.Store, cfg.JWKS)

	public := httpx.RateLimitByIP(httpx.PublicLimit)

	// Each credential endpoint gets its own limiter so a burst of sign-ins
	// cannot starve registration.
	mux.Handle("POST /v1/accounts", httpx.Chain(http.HandlerFunc(accounts.CreateAccount),
		httpx.RateLimitByIP(httpx.StrictLimit)))
	mux.Handle("POST /v1/sessions", httpx.Chain(http.HandlerFunc(accounts.SignIn),
		httpx.RateLimitByIP(httpx.StrictLimit)))

	authed := func(h http.HandlerFunc) http.Handler {
		return httpx.Chain(h,
			httpx.AuthnMiddleware(cfg.Verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		)
	}

	mux.Handle("GET /v1/projects", authed(projects.List))
	mux.Handle("POST /v1/projects", authed(projects.Add))
	mux.Handle("PUT /v1/projects/{projectId}", authed(projects.Edit))
	mux.Handle("DELETE /v1/projects/{projectId}", authed(projects.Delete))
	mux.Handle("PUT /v1/projects/{projectId}/pay", authed(projects.UpdatePay))

	mux.Handle("POST /v1/projects/{projectId}/materials", authed(materials.Add))
	mux.Handle("PUT /v1/projects/{projectId}/materials/{materialId}", authed(materials.Edit))
	mux.Handle("DELETE /v1/projects/{projectId}/materials/{materialId}", authed(materials.Delete))

	mux.Handle("POST /v1/projects/{projectId}/laborers", authed(laborers.Add))
	mux.Handle("PUT /v1/projects/{projectId}/laborers/{laborerId}", authed(laborers.Edit))
	mux.Handle("DELETE /v1/projects/{projectId}/laborers/{laborerId}", authed(laborers.Delete))

	mux.Handle("GET /livez", httpx.Chain(http.HandlerFunc(meta.Livez), public))
	mux.Handle("GET /readyz", httpx.Chain(http.HandlerFunc(meta.Readyz), public))
	mux.Handle("GET /.well-known/jwks.json", httpx.Chain(http.HandlerFunc(meta.JWKS), public))

	return slogx.HTTPMiddleware(cfg.Logger)(mux)
}
