package models

import "time"

// Gig is a client-posted engagement that talents apply to. Only the owning
// client may mutate it; this core reads it for ownership checks.
type Gig struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"client_id"`
	Title     string    `json:"title"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
