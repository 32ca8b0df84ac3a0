package models

import "time"

// BookingConfirmed is the status a booking is created with.
const BookingConfirmed = "confirmed"

// Booking is the confirmed engagement created when an application is
// accepted. ApplicationID is unique per booking: at most one booking can ever
// exist for an application.
type Booking struct {
	ID            string    `json:"id"`
	ApplicationID string    `json:"application_id"`
	GigID         string    `json:"gig_id"`
	TalentID      string    `json:"talent_id"`
	ClientID      string    `json:"client_id"`
	Date          string    `json:"date,omitempty"`
	Compensation  *float64  `json:"compensation,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}
