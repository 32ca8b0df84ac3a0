// Package storagetest provides an in-memory storage.Store for unit tests.
// It mirrors the Postgres guard semantics: status writes only apply from a
// non-terminal state, and one booking per application.
package storagetest

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gigbook/gigbook-be/internal/models"
	"github.com/gigbook/gigbook-be/internal/storage"
)

var _ storage.Store = (*Store)(nil)

// Store keeps all rows in maps guarded by one mutex.
type Store struct {
	mu           sync.Mutex
	Profiles     map[string]models.Profile
	Gigs         map[string]models.Gig
	Applications map[string]models.Application
	Bookings     map[string]models.Booking // keyed by application id

	// Optional error injections, returned verbatim by the matching method.
	ProfileErr     error
	ApplicationErr error
	AcceptErr      error
}

// New returns an empty store.
func New() *Store {
	return &Store{
		Profiles:     make(map[string]models.Profile),
		Gigs:         make(map[string]models.Gig),
		Applications: make(map[string]models.Application),
		Bookings:     make(map[string]models.Booking),
	}
}

// AddProfile seeds a profile.
func (s *Store) AddProfile(p models.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Profiles[p.ID] = p
}

// AddGig seeds a gig.
func (s *Store) AddGig(g models.Gig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Gigs[g.ID] = g
}

// AddApplication seeds an application.
func (s *Store) AddApplication(a models.Application) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Applications[a.ID] = a
}

func (s *Store) CreateProfile(_ context.Context, profile models.Profile) (models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.Profiles {
		if existing.Username == profile.Username || existing.Email == profile.Email {
			return models.Profile{}, storage.ErrAlreadyExists
		}
	}
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = time.Now()
	}
	s.Profiles[profile.ID] = profile
	return profile, nil
}

func (s *Store) ProfileByID(_ context.Context, id string) (models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ProfileErr != nil {
		return models.Profile{}, s.ProfileErr
	}
	profile, ok := s.Profiles[id]
	if !ok {
		return models.Profile{}, storage.ErrNotFound
	}
	return profile, nil
}

func (s *Store) ProfileByUsernameOrEmail(_ context.Context, identifier string) (models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, profile := range s.Profiles {
		if profile.Username == identifier || profile.Email == identifier {
			return profile, nil
		}
	}
	return models.Profile{}, storage.ErrNotFound
}

func (s *Store) GigByID(_ context.Context, id string) (models.Gig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	gig, ok := s.Gigs[id]
	if !ok {
		return models.Gig{}, storage.ErrNotFound
	}
	return gig, nil
}

func (s *Store) ApplicationByID(_ context.Context, id string) (models.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ApplicationErr != nil {
		return models.Application{}, s.ApplicationErr
	}
	app, ok := s.Applications[id]
	if !ok {
		return models.Application{}, storage.ErrNotFound
	}
	return app, nil
}

func (s *Store) UpdateApplicationStatus(_ context.Context, id, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	app, ok := s.Applications[id]
	if !ok {
		return storage.ErrNotFound
	}
	if err := terminalError(app.Status); err != nil {
		return err
	}
	app.Status = status
	s.Applications[id] = app
	return nil
}

func (s *Store) AcceptApplication(_ context.Context, applicationID string, booking models.Booking) (models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.AcceptErr != nil {
		return models.Booking{}, s.AcceptErr
	}
	app, ok := s.Applications[applicationID]
	if !ok {
		return models.Booking{}, storage.ErrNotFound
	}
	if err := terminalError(app.Status); err != nil {
		return models.Booking{}, err
	}
	if _, exists := s.Bookings[applicationID]; exists {
		return models.Booking{}, storage.ErrAlreadyAccepted
	}
	app.Status = models.StatusAccepted
	s.Applications[applicationID] = app
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now()
	}
	s.Bookings[applicationID] = booking
	return booking, nil
}

func (s *Store) BookingByApplication(_ context.Context, applicationID string) (models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	booking, ok := s.Bookings[applicationID]
	if !ok {
		return models.Booking{}, storage.ErrNotFound
	}
	return booking, nil
}

func (s *Store) HasBookingBetween(_ context.Context, clientID, talentID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, booking := range s.Bookings {
		if booking.ClientID == clientID && booking.TalentID == talentID {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) HasApplicationToClientGigs(_ context.Context, clientID, talentID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, app := range s.Applications {
		if app.TalentID != talentID {
			continue
		}
		if gig, ok := s.Gigs[app.GigID]; ok && gig.ClientID == clientID {
			return true, nil
		}
	}
	return false, nil
}

// BookingCount reports how many bookings exist, for at-most-once assertions.
func (s *Store) BookingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Bookings)
}

func terminalError(status string) error {
	switch status {
	case models.StatusRejected:
		return storage.ErrApplicationRejected
	case models.StatusAccepted:
		return storage.ErrAlreadyAccepted
	}
	if models.IsTerminalStatus(status) {
		return fmt.Errorf("unhandled terminal status %q", status)
	}
	return nil
}
