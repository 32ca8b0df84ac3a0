// Package notify is the fire-and-forget notification sink. Delivery failures
// are the caller's to log and never unwind a committed transaction.
package notify

import (
	"context"
	"log"
)

// BookingEvent carries the template data for a booking-confirmation message.
type BookingEvent struct {
	BookingID     string
	ApplicationID string
	GigID         string
	TalentID      string
	ClientID      string
	Date          string
}

// Notifier delivers booking lifecycle events to the notification backend.
type Notifier interface {
	BookingConfirmed(ctx context.Context, event BookingEvent) error
}

// LogNotifier writes events to the process log. Stands in for the hosted
// email service in local and test environments.
type LogNotifier struct{}

// BookingConfirmed logs the event and always succeeds.
func (LogNotifier) BookingConfirmed(_ context.Context, event BookingEvent) error {
	log.Printf("notify: booking %s confirmed for talent %s (gig %s)", event.BookingID, event.TalentID, event.GigID)
	return nil
}
