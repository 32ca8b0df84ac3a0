package models

import "time"

// Role values carried by a profile. An empty role means the account has not
// been assigned one yet.
const (
	RoleTalent = "talent"
	RoleClient = "client"
	RoleAdmin  = "admin"
)

// AccountType values. The account type is written by the onboarding flow and
// can lag behind the role during migration, so neither field alone is
// authoritative for talent/client standing.
const (
	AccountUnassigned = "unassigned"
	AccountTalent     = "talent"
	AccountClient     = "client"
)

// Profile captures the role and account-type record for an authenticated
// identity, plus the credential fields used by signup/login.
type Profile struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	AccountType  string    `json:"account_type"`
	IsSuspended  bool      `json:"is_suspended"`
	CreatedAt    time.Time `json:"created_at"`
}
