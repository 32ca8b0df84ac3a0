package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gigbook/gigbook-be/internal/auth"
	"github.com/gigbook/gigbook-be/internal/models"
	"github.com/gigbook/gigbook-be/internal/policy"
	"github.com/gigbook/gigbook-be/internal/storage/storagetest"
)

func newGuardEnv(t *testing.T) (*storagetest.Store, *auth.TokenManager, http.Handler) {
	t.Helper()
	store := storagetest.New()
	store.AddProfile(models.Profile{ID: "talent-1", Role: models.RoleTalent, AccountType: models.AccountTalent})
	store.AddProfile(models.Profile{ID: "client-1", Role: models.RoleClient, AccountType: models.AccountClient})
	store.AddProfile(models.Profile{ID: "admin-1", Role: models.RoleAdmin})

	tokens := auth.NewTokenManager("test-secret-0123456789", "gigbook-test", time.Hour)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return store, tokens, RouteGuard(tokens, store, next)
}

func get(t *testing.T, guard http.Handler, tokens *auth.TokenManager, path, callerID string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if callerID != "" {
		raw, err := tokens.Generate(models.Profile{ID: callerID})
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+raw)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	guard.ServeHTTP(rec, req)
	return rec
}

func TestGuardAdmitsPublicPaths(t *testing.T) {
	_, tokens, guard := newGuardEnv(t)
	for _, path := range []string{"/", "/talent", "/talent/some-id", "/client/apply", "/login", "/health"} {
		rec := get(t, guard, tokens, path, "", nil)
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestGuardRedirectsAnonymousToLogin(t *testing.T) {
	_, tokens, guard := newGuardEnv(t)
	rec := get(t, guard, tokens, "/dashboard", "", nil)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, policy.LoginPath, rec.Header().Get("Location"))
}

func TestGuardRedirectsWrongRoleToOwnDashboard(t *testing.T) {
	_, tokens, guard := newGuardEnv(t)

	rec := get(t, guard, tokens, "/client/dashboard", "talent-1", nil)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, policy.TalentDashboard, rec.Header().Get("Location"))

	rec = get(t, guard, tokens, "/dashboard", "client-1", nil)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, policy.ClientDashboard, rec.Header().Get("Location"))
}

func TestGuardAdmitsMatchingRole(t *testing.T) {
	_, tokens, guard := newGuardEnv(t)
	assert.Equal(t, http.StatusOK, get(t, guard, tokens, "/dashboard", "talent-1", nil).Code)
	assert.Equal(t, http.StatusOK, get(t, guard, tokens, "/client/dashboard", "client-1", nil).Code)
	assert.Equal(t, http.StatusOK, get(t, guard, tokens, "/admin/applications", "admin-1", nil).Code)
}

func TestGuardReturnsStatusForJSONCallers(t *testing.T) {
	_, tokens, guard := newGuardEnv(t)
	jsonHeaders := map[string]string{"Accept": "application/json"}

	rec := get(t, guard, tokens, "/admin/applications", "", jsonHeaders)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = get(t, guard, tokens, "/admin/applications", "client-1", jsonHeaders)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestGuardFailsClosedOnUnknownPrincipal(t *testing.T) {
	// Valid token whose profile row is gone: treated as anonymous.
	_, tokens, guard := newGuardEnv(t)
	rec := get(t, guard, tokens, "/dashboard", "ghost", nil)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, policy.LoginPath, rec.Header().Get("Location"))
}
