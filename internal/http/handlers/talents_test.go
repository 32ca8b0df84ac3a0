package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gigbook/gigbook-be/internal/auth"
	"github.com/gigbook/gigbook-be/internal/models"
	"github.com/gigbook/gigbook-be/internal/relationship"
	"github.com/gigbook/gigbook-be/internal/storage/storagetest"
)

func newTalentsEnv(t *testing.T) (*storagetest.Store, *auth.TokenManager, *http.ServeMux) {
	t.Helper()
	store := storagetest.New()
	store.AddProfile(models.Profile{ID: "client-1", Role: models.RoleClient, AccountType: models.AccountClient})
	store.AddProfile(models.Profile{ID: "talent-1", Role: models.RoleTalent, AccountType: models.AccountTalent})
	store.AddProfile(models.Profile{ID: "admin-1", Role: models.RoleAdmin})
	store.AddGig(models.Gig{ID: "gig-1", ClientID: "client-1"})

	tokens := auth.NewTokenManager("test-secret-0123456789", "gigbook-test", time.Hour)
	mux := http.NewServeMux()
	NewTalentsHandler(relationship.NewOracle(store), store, tokens).Register(mux)
	return store, tokens, mux
}

func getVisibility(t *testing.T, mux *http.ServeMux, tokens *auth.TokenManager, callerID, talentID string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/talents/"+talentID+"/visibility", nil)
	if callerID != "" {
		raw, err := tokens.Generate(models.Profile{ID: callerID})
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+raw)
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func decodeVisibility(t *testing.T, rec *httptest.ResponseRecorder) bool {
	t.Helper()
	var resp struct {
		CanViewSensitive bool `json:"canViewSensitive"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp.CanViewSensitive
}

func TestVisibilityHiddenWithoutRelationship(t *testing.T) {
	_, tokens, mux := newTalentsEnv(t)
	rec := getVisibility(t, mux, tokens, "client-1", "talent-1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, decodeVisibility(t, rec))
}

func TestVisibilityGrantedAfterApplication(t *testing.T) {
	store, tokens, mux := newTalentsEnv(t)
	store.AddApplication(models.Application{ID: "app-1", GigID: "gig-1", TalentID: "talent-1", Status: models.StatusNew})

	rec := getVisibility(t, mux, tokens, "client-1", "talent-1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeVisibility(t, rec))
}

func TestVisibilityUnauthenticated(t *testing.T) {
	_, tokens, mux := newTalentsEnv(t)
	rec := getVisibility(t, mux, tokens, "", "talent-1")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestVisibilityForbiddenForTalentCaller(t *testing.T) {
	_, tokens, mux := newTalentsEnv(t)
	rec := getVisibility(t, mux, tokens, "talent-1", "talent-1")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestVisibilityAdminAlwaysSees(t *testing.T) {
	_, tokens, mux := newTalentsEnv(t)
	rec := getVisibility(t, mux, tokens, "admin-1", "talent-1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeVisibility(t, rec))
}
