package models

import "time"

// Account roles. Regular accounts are created with RoleUser; RoleAdmin is
// required for movie management and penalty assignment.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Account represents a registered user's durable identity record.
// Sensitive fields (password hash, verification token) must never be
// exposed outside trusted boundaries.
type Account struct {
	// ID is the opaque unique identifier assigned at registration.
	ID string `json:"id"`

	// Username is the unique account name, 3-20 ASCII alphanumeric characters.
	Username string `json:"username"`

	// Email is the unique, format-validated address used for verification.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the account password.
	// This value MUST be a hash, never plaintext.
	PasswordHash string `json:"-"`

	// Role controls access to administrative operations.
	Role string `json:"role"`

	// IsVerified reports whether the account's email has been confirmed.
	IsVerified bool `json:"is_verified"`

	// VerificationToken is the one-time opaque value proving control of the
	// registered email. It is checked by equality and never exposed via JSON
	// responses other than the registration reply.
	VerificationToken string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`

	// LastLogin is the timestamp of the most recent successful login.
	// Nil until the account logs in for the first time.
	LastLogin *time.Time `json:"last_login,omitempty"`

	// Penalties is the account's penalty ledger, ordered by issuance.
	Penalties []PenaltyGrant `json:"penalties,omitempty"`
}

// PenaltyGrant is a single point award against an account. Grants are
// append-only: they are never mutated or deleted once issued.
type PenaltyGrant struct {
	// Points is the number of penalty points awarded.
	Points int `json:"points"`

	// Reason is the free-text justification recorded by the assigning admin.
	Reason string `json:"reason"`

	// GrantedBy is the username of the admin who issued the grant.
	GrantedBy string `json:"granted_by"`

	// IssuedAt is the wall-clock issuance timestamp.
	IssuedAt time.Time `json:"issued_at"`

	// Seq is a per-account monotonic sequence number. It makes grants
	// distinguishable even when two are issued within clock resolution.
	Seq uint64 `json:"seq"`
}

// TotalPoints returns the sum of points across all grants in the ledger.
func (a *Account) TotalPoints() int {
	total := 0
	for _, g := range a.Penalties {
		total += g.Points
	}
	return total
}
