// Package policy holds the access-control decisions shared by route
// middleware, handlers, and the accept workflow. Every surface consults these
// functions instead of re-deriving role checks, so the role/account_type
// drift handling lives in exactly one place.
package policy

import (
	"strings"

	"github.com/gigbook/gigbook-be/internal/models"
)

const (
	clientPrefix = "/client"
	adminPrefix  = "/admin"
)

// Client onboarding pages that must stay reachable before approval.
var clientPublicPaths = []string{
	"/client/apply",
	"/client/apply-success",
	"/client/application-status",
	"/client/signup",
}

// Talent-only surfaces. Everything else under the talent umbrella (the
// landing page, public per-talent profiles) is world-readable.
var talentPrivatePaths = []string{
	"/dashboard",
	"/profile/edit",
	"/settings",
	"/subscribe",
}

// HasTalentAccess reports whether the profile carries talent standing.
// Role and account_type are updated by different flows and can disagree
// transiently, so either one is accepted as evidence.
func HasTalentAccess(p *models.Profile) bool {
	if p == nil || p.IsSuspended {
		return false
	}
	return p.AccountType == models.AccountTalent || p.Role == models.RoleTalent
}

// HasClientAccess reports whether the profile carries client standing, under
// the same either-field rule as HasTalentAccess.
func HasClientAccess(p *models.Profile) bool {
	if p == nil || p.IsSuspended {
		return false
	}
	return p.AccountType == models.AccountClient || p.Role == models.RoleClient
}

// IsAdmin reports whether the profile carries the admin role.
func IsAdmin(p *models.Profile) bool {
	return p != nil && !p.IsSuspended && p.Role == models.RoleAdmin
}

// NeedsClientAccess reports whether path is a client-gated surface.
func NeedsClientAccess(path string) bool {
	if !underPrefix(path, clientPrefix) {
		return false
	}
	for _, public := range clientPublicPaths {
		if matchesPath(path, public) {
			return false
		}
	}
	return true
}

// NeedsTalentAccess reports whether path is a talent-gated surface.
func NeedsTalentAccess(path string) bool {
	for _, private := range talentPrivatePaths {
		if matchesPath(path, private) {
			return true
		}
	}
	return false
}

// NeedsAdminAccess reports whether path is under the admin surface.
func NeedsAdminAccess(path string) bool {
	return underPrefix(path, adminPrefix)
}

// CanAccessPath decides whether the profile may reach path. A nil profile
// never satisfies any gate: absence of evidence is absence of access.
func CanAccessPath(path string, p *models.Profile) bool {
	switch {
	case NeedsAdminAccess(path):
		return IsAdmin(p)
	case NeedsClientAccess(path):
		return HasClientAccess(p)
	case NeedsTalentAccess(path):
		return HasTalentAccess(p)
	}
	return true
}

// matchesPath matches base exactly or as a prefix followed by a slash, so
// "/settings" gates "/settings/billing" but not "/settings-export".
func matchesPath(path, base string) bool {
	return path == base || strings.HasPrefix(path, base+"/")
}

func underPrefix(path, prefix string) bool {
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}
