package models

import "time"

// Application statuses. Rejected and accepted are terminal: no transition
// leaves them, and a rejected application can never become accepted.
const (
	StatusNew         = "new"
	StatusUnderReview = "under_review"
	StatusShortlisted = "shortlisted"
	StatusRejected    = "rejected"
	StatusAccepted    = "accepted"
)

// Application is a talent's request to be booked for a gig. Created by the
// talent; mutated only by the gig's owning client (accept) or an admin.
type Application struct {
	ID         string    `json:"id"`
	GigID      string    `json:"gig_id"`
	TalentID   string    `json:"talent_id"`
	Status     string    `json:"status"`
	AdminNotes string    `json:"admin_notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// IsTerminalStatus reports whether no further transition is permitted.
func IsTerminalStatus(status string) bool {
	return status == StatusRejected || status == StatusAccepted
}

// IsValidStatus reports whether status is a member of the application enum.
func IsValidStatus(status string) bool {
	switch status {
	case StatusNew, StatusUnderReview, StatusShortlisted, StatusRejected, StatusAccepted:
		return true
	}
	return false
}
