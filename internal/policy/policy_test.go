package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gigbook/gigbook-be/internal/models"
)

func talentProfile() *models.Profile {
	return &models.Profile{ID: "t1", Role: models.RoleTalent, AccountType: models.AccountTalent}
}

func clientProfile() *models.Profile {
	return &models.Profile{ID: "c1", Role: models.RoleClient, AccountType: models.AccountClient}
}

func adminProfile() *models.Profile {
	return &models.Profile{ID: "a1", Role: models.RoleAdmin, AccountType: models.AccountUnassigned}
}

func TestRoleEvidenceEitherFieldCounts(t *testing.T) {
	tests := []struct {
		name    string
		profile *models.Profile
		talent  bool
		client  bool
	}{
		{"nil profile", nil, false, false},
		{"role only", &models.Profile{Role: models.RoleTalent, AccountType: models.AccountUnassigned}, true, false},
		{"account type only", &models.Profile{AccountType: models.AccountTalent}, true, false},
		{"client role only", &models.Profile{Role: models.RoleClient, AccountType: models.AccountUnassigned}, false, true},
		{"client account type only", &models.Profile{AccountType: models.AccountClient}, false, true},
		{"unassigned everything", &models.Profile{AccountType: models.AccountUnassigned}, false, false},
		{"suspended talent", &models.Profile{Role: models.RoleTalent, AccountType: models.AccountTalent, IsSuspended: true}, false, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.talent, HasTalentAccess(tc.profile))
			assert.Equal(t, tc.client, HasClientAccess(tc.profile))
		})
	}
}

// A profile can only satisfy both role predicates when role and account_type
// point at opposite roles, which takes data corruption. The policy does not
// arbitrate that conflict; both predicates report true and the caller's gate
// ordering decides.
func TestCrossedRoleFieldsSatisfyBothPredicates(t *testing.T) {
	crossed := &models.Profile{Role: models.RoleTalent, AccountType: models.AccountClient}
	assert.True(t, HasTalentAccess(crossed))
	assert.True(t, HasClientAccess(crossed))
}

func TestPathGating(t *testing.T) {
	tests := []struct {
		path   string
		client bool
		talent bool
		admin  bool
	}{
		{"/client/dashboard", true, false, false},
		{"/client/gigs/123", true, false, false},
		{"/client", true, false, false},
		{"/client/apply", false, false, false},
		{"/client/apply-success", false, false, false},
		{"/client/application-status", false, false, false},
		{"/client/signup", false, false, false},
		{"/client/apply/extra", false, false, false},
		{"/dashboard", false, true, false},
		{"/dashboard/bookings", false, true, false},
		{"/profile/edit", false, true, false},
		{"/settings", false, true, false},
		{"/settings/billing", false, true, false},
		{"/settings-export", false, false, false},
		{"/subscribe", false, true, false},
		{"/talent", false, false, false},
		{"/talent/some-talent-id", false, false, false},
		{"/admin", false, false, true},
		{"/admin/applications", false, false, true},
		{"/", false, false, false},
	}
	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			assert.Equal(t, tc.client, NeedsClientAccess(tc.path), "client gate")
			assert.Equal(t, tc.talent, NeedsTalentAccess(tc.path), "talent gate")
			assert.Equal(t, tc.admin, NeedsAdminAccess(tc.path), "admin gate")
		})
	}
}

func TestCanAccessPathFailsClosedForNilProfile(t *testing.T) {
	gated := []string{"/client/dashboard", "/dashboard", "/profile/edit", "/settings", "/subscribe", "/admin", "/admin/applications"}
	for _, path := range gated {
		assert.False(t, CanAccessPath(path, nil), path)
	}
	// Public surfaces stay open without a profile.
	assert.True(t, CanAccessPath("/talent", nil))
	assert.True(t, CanAccessPath("/talent/abc123", nil))
	assert.True(t, CanAccessPath("/client/apply", nil))
}

func TestCanAccessPathByRole(t *testing.T) {
	assert.True(t, CanAccessPath("/dashboard", talentProfile()))
	assert.False(t, CanAccessPath("/client/dashboard", talentProfile()))
	assert.True(t, CanAccessPath("/client/dashboard", clientProfile()))
	assert.False(t, CanAccessPath("/admin/applications", clientProfile()))
	assert.True(t, CanAccessPath("/admin/applications", adminProfile()))
	// Admin role alone does not grant client or talent surfaces.
	assert.False(t, CanAccessPath("/client/dashboard", adminProfile()))
	assert.False(t, CanAccessPath("/dashboard", adminProfile()))
}
