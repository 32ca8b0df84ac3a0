package policy

import "github.com/gigbook/gigbook-be/internal/models"

// Dashboard paths used for post-authentication routing.
const (
	TalentDashboard = "/dashboard"
	ClientDashboard = "/client/dashboard"
	AdminDashboard  = "/admin/dashboard"
	LoginPath       = "/login"
)

// Destination returns where a freshly authenticated profile should land.
// The admin check runs first so an admin carrying a stale talent or client
// account_type is still routed to the admin surface. An empty fallback means
// the talent dashboard.
func Destination(p *models.Profile, fallback string) string {
	if fallback == "" {
		fallback = TalentDashboard
	}
	switch {
	case p == nil:
		return fallback
	case IsAdmin(p):
		return AdminDashboard
	case HasClientAccess(p):
		return ClientDashboard
	case HasTalentAccess(p):
		return TalentDashboard
	}
	return fallback
}
