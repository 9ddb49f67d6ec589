package httpx

import (
	"net/http"
	"slices"
)

// RequireAnyRole rejects requests whose session claims carry none of the
// listed roles. Superusers pass regardless; they administer every tenant.
func RequireAnyRole(required ...string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				writeBearerError(w, "missing session")
				return
			}
			if claims.Superuser {
				next.ServeHTTP(w, r)
				return
			}
			for _, role := range required {
				if slices.Contains(claims.Roles, role) {
					next.ServeHTTP(w, r)
					return
				}
			}
			WriteError(w, http.StatusForbidden, "forbidden", "missing required role")
		})
	}
}

// RequireSuperuser rejects requests from anyone but platform operators.
func RequireSuperuser() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok || !claims.Superuser {
				WriteError(w, http.StatusForbidden, "forbidden", "superuser required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
