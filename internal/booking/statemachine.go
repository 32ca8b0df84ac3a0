package booking

import "github.com/gigbook/gigbook-be/internal/models"

// Actor identifies who is attempting a status transition.
type Actor int

const (
	// ActorTalent is the applicant. Read-only: no transition rights.
	ActorTalent Actor = iota
	// ActorOwningClient is the client who owns the application's gig.
	ActorOwningClient
	// ActorAdmin may edit status administratively.
	ActorAdmin
)

// CanTransition reports whether actor may move an application from one
// status to another. Terminal states absorb: nothing leaves rejected or
// accepted, for anyone. Admins may otherwise set any status; the owning
// client may only move toward accepted, which in practice happens through
// the accept transaction rather than a raw status edit.
func CanTransition(actor Actor, from, to string) bool {
	if !models.IsValidStatus(from) || !models.IsValidStatus(to) {
		return false
	}
	if models.IsTerminalStatus(from) {
		return false
	}
	switch actor {
	case ActorAdmin:
		return true
	case ActorOwningClient:
		return to == models.StatusAccepted
	}
	return false
}
