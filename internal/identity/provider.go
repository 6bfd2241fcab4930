// Package identity talks to the external identity provider that owns staff
// credentials.  The local users table mirrors provider accounts by id but
// never stores a password; bulk imports best-effort sync new accounts into
// the provider after the local write has committed.
package identity

import "context"

// Account is the subset of a provider account this system cares about.
type Account struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Provider is the call contract the bulk reconciliation service depends on.
// Implementations must treat every method as a single bounded remote call:
// the caller sequences them and records per-record failures.
type Provider interface {
	// Lookup returns the account with the given id, or ErrAccountNotFound.
	Lookup(ctx context.Context, id string) (Account, error)
	// Create registers a new account with the supplied credential.
	Create(ctx context.Context, acct Account, password string) error
	// UpdateEmail sets the email of an existing account.  The credential is
	// left untouched.
	UpdateEmail(ctx context.Context, id, email string) error
}
