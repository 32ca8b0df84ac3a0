// Package booking owns the application lifecycle: the status state machine,
// the accept-to-booking transaction, and the admin status edit.
package booking

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/gigbook/gigbook-be/internal/models"
	"github.com/gigbook/gigbook-be/internal/notify"
	"github.com/gigbook/gigbook-be/internal/policy"
	"github.com/gigbook/gigbook-be/internal/storage"
)

// AcceptInput is the caller-supplied portion of an accept call. Date,
// compensation, and notes are optional; compensation arrives as a loosely
// formatted string and is normalized before persistence.
type AcceptInput struct {
	ApplicationID string
	Date          string
	Compensation  string
	Notes         string
}

// AcceptResult reports the booking an accept call resolved to. Created is
// false when the application was already accepted and the existing booking
// was returned instead of a new one.
type AcceptResult struct {
	BookingID string
	Created   bool
}

type serviceStore interface {
	storage.ProfileStore
	storage.GigStore
	storage.ApplicationStore
	storage.BookingStore
}

// Service runs the application workflow against the backing store.
type Service struct {
	store    serviceStore
	notifier notify.Notifier
}

// NewService constructs the workflow service.
func NewService(store serviceStore, notifier notify.Notifier) *Service {
	return &Service{store: store, notifier: notifier}
}

// Accept converts an application into a confirmed booking on behalf of
// callerID. The caller must own the application's gig or be an admin.
// Accepting an already-accepted application is an idempotent no-op returning
// the existing booking; accepting a rejected one fails with ErrRejected.
func (s *Service) Accept(ctx context.Context, callerID string, input AcceptInput) (AcceptResult, error) {
	if strings.TrimSpace(callerID) == "" {
		return AcceptResult{}, ErrUnauthenticated
	}
	if strings.TrimSpace(input.ApplicationID) == "" {
		return AcceptResult{}, fmt.Errorf("%w: applicationId is required", ErrValidation)
	}

	app, err := s.store.ApplicationByID(ctx, input.ApplicationID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return AcceptResult{}, ErrNotFound
		}
		return AcceptResult{}, fmt.Errorf("load application: %w", err)
	}
	gig, err := s.store.GigByID(ctx, app.GigID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return AcceptResult{}, ErrNotFound
		}
		return AcceptResult{}, fmt.Errorf("load gig: %w", err)
	}

	if err := s.authorizeAccept(ctx, callerID, gig); err != nil {
		return AcceptResult{}, err
	}

	switch app.Status {
	case models.StatusRejected:
		return AcceptResult{}, ErrRejected
	case models.StatusAccepted:
		return s.existingBooking(ctx, app.ID)
	}

	created := models.Booking{
		ID:            uuid.NewString(),
		ApplicationID: app.ID,
		GigID:         app.GigID,
		TalentID:      app.TalentID,
		ClientID:      gig.ClientID,
		Date:          strings.TrimSpace(input.Date),
		Compensation:  NormalizeCompensation(input.Compensation),
		Notes:         strings.TrimSpace(input.Notes),
		Status:        models.BookingConfirmed,
	}
	stored, err := s.store.AcceptApplication(ctx, app.ID, created)
	switch {
	case errors.Is(err, storage.ErrApplicationRejected):
		// Lost the race to a rejection.
		return AcceptResult{}, ErrRejected
	case errors.Is(err, storage.ErrAlreadyAccepted):
		// Lost the race to another accept; its booking stands.
		return s.existingBooking(ctx, app.ID)
	case errors.Is(err, storage.ErrNotFound):
		return AcceptResult{}, ErrNotFound
	case err != nil:
		return AcceptResult{}, fmt.Errorf("accept application: %w", err)
	}

	// The business fact is committed. A notification failure is logged and
	// surfaced nowhere else.
	event := notify.BookingEvent{
		BookingID:     stored.ID,
		ApplicationID: stored.ApplicationID,
		GigID:         stored.GigID,
		TalentID:      stored.TalentID,
		ClientID:      stored.ClientID,
		Date:          stored.Date,
	}
	if err := s.notifier.BookingConfirmed(ctx, event); err != nil {
		log.Printf("booking %s: confirmation notification failed: %v", stored.ID, err)
	}

	return AcceptResult{BookingID: stored.ID, Created: true}, nil
}

// SetStatus is the admin status edit. It never creates a booking: the target
// status accepted is refused here so the accept transaction stays the only
// path that can produce one.
func (s *Service) SetStatus(ctx context.Context, callerID, applicationID, status string) error {
	if strings.TrimSpace(callerID) == "" {
		return ErrUnauthenticated
	}
	caller, err := s.store.ProfileByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrUnauthenticated
		}
		return fmt.Errorf("%w: %v", ErrAdminCheck, err)
	}
	if !policy.IsAdmin(&caller) {
		return ErrForbidden
	}
	if !models.IsValidStatus(status) {
		return fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}
	if status == models.StatusAccepted {
		return fmt.Errorf("%w: acceptance must go through the accept flow", ErrValidation)
	}

	app, err := s.store.ApplicationByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("load application: %w", err)
	}
	if !CanTransition(ActorAdmin, app.Status, status) {
		return ErrRejectedTransition(app.Status, status)
	}

	err = s.store.UpdateApplicationStatus(ctx, applicationID, status)
	switch {
	case errors.Is(err, storage.ErrApplicationRejected), errors.Is(err, storage.ErrAlreadyAccepted):
		return ErrRejectedTransition(app.Status, status)
	case errors.Is(err, storage.ErrNotFound):
		return ErrNotFound
	case err != nil:
		return fmt.Errorf("update status: %w", err)
	}
	return nil
}

func (s *Service) authorizeAccept(ctx context.Context, callerID string, gig models.Gig) error {
	if callerID == gig.ClientID {
		return nil
	}
	caller, err := s.store.ProfileByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrForbidden
		}
		return fmt.Errorf("load caller profile: %w", err)
	}
	// Admin-triggered acceptance is a deliberate, separately authorized path.
	if policy.IsAdmin(&caller) {
		return nil
	}
	return ErrForbidden
}

func (s *Service) existingBooking(ctx context.Context, applicationID string) (AcceptResult, error) {
	existing, err := s.store.BookingByApplication(ctx, applicationID)
	if err != nil {
		return AcceptResult{}, fmt.Errorf("load existing booking: %w", err)
	}
	return AcceptResult{BookingID: existing.ID, Created: false}, nil
}
