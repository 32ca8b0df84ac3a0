package storage

import (
	"context"
	"errors"

	"github.com/gigbook/gigbook-be/internal/models"
)

// ErrNotFound indicates a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists indicates a uniqueness conflict.
var ErrAlreadyExists = errors.New("record already exists")

// ErrApplicationRejected indicates an accept was attempted on an application
// already in the rejected terminal state.
var ErrApplicationRejected = errors.New("application already rejected")

// ErrAlreadyAccepted indicates the application reached the accepted terminal
// state before this write; the booking created by the earlier accept stands.
var ErrAlreadyAccepted = errors.New("application already accepted")

// ProfileStore captures the profile operations needed by auth and middleware.
type ProfileStore interface {
	CreateProfile(ctx context.Context, profile models.Profile) (models.Profile, error)
	ProfileByID(ctx context.Context, id string) (models.Profile, error)
	ProfileByUsernameOrEmail(ctx context.Context, identifier string) (models.Profile, error)
}

// GigStore reads gigs for ownership checks.
type GigStore interface {
	GigByID(ctx context.Context, id string) (models.Gig, error)
}

// ApplicationStore governs application reads and status writes. All status
// writes are guarded: a terminal application is never updated.
type ApplicationStore interface {
	ApplicationByID(ctx context.Context, id string) (models.Application, error)

	// UpdateApplicationStatus sets the status of a non-terminal application.
	// Returns ErrNotFound if the application is missing and
	// ErrApplicationRejected or ErrAlreadyAccepted if it is terminal.
	UpdateApplicationStatus(ctx context.Context, id, status string) error

	// AcceptApplication transitions the application to accepted and inserts
	// the booking as a single atomic unit. The status update only applies
	// from a non-terminal state; if the application is already terminal the
	// store reports which terminal state won (ErrAlreadyAccepted,
	// ErrApplicationRejected) and writes nothing.
	AcceptApplication(ctx context.Context, applicationID string, booking models.Booking) (models.Booking, error)
}

// BookingStore reads bookings for idempotent accepts and relationship checks.
type BookingStore interface {
	BookingByApplication(ctx context.Context, applicationID string) (models.Booking, error)

	// HasBookingBetween reports whether any booking pairs the client with the
	// talent. Bounded existence check, not an enumeration.
	HasBookingBetween(ctx context.Context, clientID, talentID string) (bool, error)
}

// RelationshipStore answers the application half of the sensitive-visibility
// question: has this talent ever applied to one of the client's gigs.
type RelationshipStore interface {
	HasApplicationToClientGigs(ctx context.Context, clientID, talentID string) (bool, error)
}

// Store is the full persistence surface implemented by the Postgres backend.
type Store interface {
	ProfileStore
	GigStore
	ApplicationStore
	BookingStore
	RelationshipStore
}
