// Package service holds the bulk reconciliation logic shared by the bulk
// endpoints: batch upserts against the local store followed by a
// best-effort mirror into the external identity provider.
package service

import (
	"crypto/rand"
	"database/sql"

	"go.uber.org/zap"

	"github.com/tareqmahmud/letterdesk/internal/identity"
)

// Outcome tags the result of one bulk input record.
type Outcome string

const (
	OutcomeCreated  Outcome = "created"
	OutcomeUpdated  Outcome = "updated"
	OutcomeRejected Outcome = "rejected"
)

// Importer applies bulk batches.  IDP may be nil, in which case the
// identity phase is skipped entirely (local data availability never
// depends on the provider being configured or reachable).
type Importer struct {
	DB  *sql.DB
	IDP identity.Provider
	Log *zap.Logger
}

func NewImporter(db *sql.DB, idp identity.Provider, log *zap.Logger) *Importer {
	return &Importer{DB: db, IDP: idp, Log: log}
}

const passwordLen = 12

// Alphabet for generated credentials: printable, unambiguous.
const passwordChars = "abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// generatePassword returns a random printable secret for accounts created
// without a caller-supplied credential.
func generatePassword() string {
	b := make([]byte, passwordLen)
	if _, err := rand.Read(b); err != nil {
		panic(err) // crypto/rand failure is unrecoverable
	}
	for i := range b {
		b[i] = passwordChars[int(b[i])%len(passwordChars)]
	}
	return string(b)
}
