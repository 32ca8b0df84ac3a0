// Package relationship decides whether a client has enough history with a
// talent to see the talent's sensitive profile fields.
package relationship

import (
	"context"
	"fmt"

	"github.com/gigbook/gigbook-be/internal/storage"
)

type oracleStore interface {
	storage.RelationshipStore
	storage.BookingStore
}

// Oracle computes the client-talent relationship on each query; nothing is
// cached or materialized, so a fresh application is visible immediately.
type Oracle struct {
	store oracleStore
}

// NewOracle constructs the oracle.
func NewOracle(store oracleStore) *Oracle {
	return &Oracle{store: store}
}

// ClientCanSeeTalentSensitive reports whether clientID may view talentID's
// sensitive fields: true if the talent has applied to any of the client's
// gigs, or a booking pairs the two. Both lookups are bounded existence
// checks; without proof the answer is false.
func (o *Oracle) ClientCanSeeTalentSensitive(ctx context.Context, clientID, talentID string) (bool, error) {
	if clientID == "" || talentID == "" {
		return false, nil
	}
	applied, err := o.store.HasApplicationToClientGigs(ctx, clientID, talentID)
	if err != nil {
		return false, fmt.Errorf("check applications: %w", err)
	}
	if applied {
		return true, nil
	}
	booked, err := o.store.HasBookingBetween(ctx, clientID, talentID)
	if err != nil {
		return false, fmt.Errorf("check bookings: %w", err)
	}
	return booked, nil
}
