package middleware

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gigbook/gigbook-be/internal/auth"
	"github.com/gigbook/gigbook-be/internal/models"
	"github.com/gigbook/gigbook-be/internal/policy"
	"github.com/gigbook/gigbook-be/internal/storage"
)

// RouteGuard gates role-restricted surfaces before any handler runs. It
// resolves the principal, loads the profile, and asks the policy package; the
// handlers behind ungated paths still do their own resource-level
// authorization. Browser traffic is redirected, API traffic gets a status.
func RouteGuard(tokens *auth.TokenManager, profiles storage.ProfileStore, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path
		if policy.CanAccessPath(path, nil) {
			// Public path: no profile load needed, the policy admits everyone.
			next.ServeHTTP(w, r)
			return
		}

		var profile *models.Profile
		if id := auth.PrincipalFromRequest(r, tokens); id != "" {
			loaded, err := profiles.ProfileByID(r.Context(), id)
			switch {
			case err == nil:
				profile = &loaded
			case !errors.Is(err, storage.ErrNotFound):
				log.Printf("route guard: load profile %s: %v", id, err)
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}
		}

		if policy.CanAccessPath(path, profile) {
			next.ServeHTTP(w, r)
			return
		}

		if wantsJSON(r) {
			if profile == nil {
				http.Error(w, "not authenticated", http.StatusUnauthorized)
			} else {
				http.Error(w, "forbidden", http.StatusForbidden)
			}
			return
		}
		if profile == nil {
			http.Redirect(w, r, policy.LoginPath, http.StatusFound)
			return
		}
		http.Redirect(w, r, policy.Destination(profile, ""), http.StatusFound)
	})
}

func wantsJSON(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "application/json") ||
		strings.Contains(r.Header.Get("Content-Type"), "application/json")
}
