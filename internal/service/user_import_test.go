package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tareqmahmud/letterdesk/internal/database"
	"github.com/tareqmahmud/letterdesk/internal/identity"
	"github.com/tareqmahmud/letterdesk/internal/model"
)

// fakeProvider records identity calls in memory.
type fakeProvider struct {
	accounts  map[string]identity.Account
	passwords map[string]string
	failAll   error
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{
		accounts:  make(map[string]identity.Account),
		passwords: make(map[string]string),
	}
}

func (f *fakeProvider) Lookup(_ context.Context, id string) (identity.Account, error) {
	if f.failAll != nil {
		return identity.Account{}, f.failAll
	}
	acct, ok := f.accounts[id]
	if !ok {
		return identity.Account{}, identity.ErrAccountNotFound
	}
	return acct, nil
}

func (f *fakeProvider) Create(_ context.Context, acct identity.Account, password string) error {
	if f.failAll != nil {
		return f.failAll
	}
	f.accounts[acct.ID] = acct
	f.passwords[acct.ID] = password
	return nil
}

func (f *fakeProvider) UpdateEmail(_ context.Context, id, email string) error {
	if f.failAll != nil {
		return f.failAll
	}
	acct := f.accounts[id]
	acct.Email = email
	f.accounts[id] = acct
	return nil
}

func newTestImporter(t *testing.T, idp identity.Provider) (*Importer, *sql.DB) {
	t.Helper()
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.EnsureSchema(context.Background(), db))
	return NewImporter(db, idp, zap.NewNop()), db
}

func countRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&n))
	return n
}

func TestBulkUpsertUsersCreateAndUpdate(t *testing.T) {
	idp := newFakeProvider()
	im, db := newTestImporter(t, idp)
	ctx := context.Background()

	_, err := db.Exec("INSERT INTO users (id, email) VALUES ('u1', 'old@office.gov.bd')")
	require.NoError(t, err)

	results, err := im.BulkUpsertUsers(ctx, []UserRecord{
		{ID: "u1", Email: "New@office.gov.bd", Role: model.RoleAdmin},
		{ID: "u2", Email: "fresh@office.gov.bd"},
	})
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, OutcomeUpdated, results[0].Outcome)
	assert.Empty(t, results[0].Password)
	// Existing users are updated locally only unless resync is requested.
	assert.Nil(t, results[0].AuthOK)

	assert.Equal(t, OutcomeCreated, results[1].Outcome)
	assert.Len(t, results[1].Password, 12)
	require.NotNil(t, results[1].AuthOK)
	assert.True(t, *results[1].AuthOK)

	// The new account was mirrored with the generated credential.
	assert.Equal(t, "fresh@office.gov.bd", idp.accounts["u2"].Email)
	assert.Equal(t, results[1].Password, idp.passwords["u2"])
	_, exists := idp.accounts["u1"]
	assert.False(t, exists)

	var email, role string
	require.NoError(t, db.QueryRow("SELECT email, role FROM users WHERE id = 'u1'").Scan(&email, &role))
	assert.Equal(t, "new@office.gov.bd", email)
	assert.Equal(t, model.RoleAdmin, role)
}

func TestBulkUpsertUsersResync(t *testing.T) {
	idp := newFakeProvider()
	idp.accounts["u1"] = identity.Account{ID: "u1", Email: "old@office.gov.bd"}
	im, db := newTestImporter(t, idp)
	ctx := context.Background()

	_, err := db.Exec("INSERT INTO users (id, email) VALUES ('u1', 'old@office.gov.bd')")
	require.NoError(t, err)

	results, err := im.BulkUpsertUsers(ctx, []UserRecord{
		{ID: "u1", Email: "renamed@office.gov.bd", Resync: true},
	})
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.Equal(t, OutcomeUpdated, results[0].Outcome)
	require.NotNil(t, results[0].AuthOK)
	assert.True(t, *results[0].AuthOK)
	assert.Equal(t, "renamed@office.gov.bd", idp.accounts["u1"].Email)
	// An existing provider account never gets a new credential.
	assert.Empty(t, idp.passwords["u1"])
}

func TestBulkUpsertUsersRejectsInvalid(t *testing.T) {
	im, _ := newTestImporter(t, nil)
	ctx := context.Background()

	results, err := im.BulkUpsertUsers(ctx, []UserRecord{
		{ID: "", Email: "a@office.gov.bd"},
		{ID: "u1", Email: ""},
		{ID: "u2", Email: "ok@office.gov.bd"},
	})
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, OutcomeRejected, results[0].Outcome)
	assert.Equal(t, OutcomeRejected, results[1].Outcome)
	assert.Equal(t, OutcomeCreated, results[2].Outcome)
}

func TestBulkUpsertUsersAtomicOnConstraintViolation(t *testing.T) {
	im, db := newTestImporter(t, nil)
	ctx := context.Background()

	// Second record reuses the first's email; the whole batch rolls back.
	_, err := im.BulkUpsertUsers(ctx, []UserRecord{
		{ID: "u1", Email: "same@office.gov.bd"},
		{ID: "u2", Email: "same@office.gov.bd"},
	})
	require.Error(t, err)
	assert.Equal(t, 0, countRows(t, db, "users"))
}

func TestBulkUpsertUsersProviderFailureKeepsLocalRow(t *testing.T) {
	idp := newFakeProvider()
	idp.failAll = errors.New("identity provider unreachable")
	im, db := newTestImporter(t, idp)
	ctx := context.Background()

	results, err := im.BulkUpsertUsers(ctx, []UserRecord{
		{ID: "u1", Email: "a@office.gov.bd"},
	})
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.Equal(t, OutcomeCreated, results[0].Outcome)
	require.NotNil(t, results[0].AuthOK)
	assert.False(t, *results[0].AuthOK)
	assert.Contains(t, results[0].AuthError, "unreachable")

	// The local row survives the failed mirror.
	assert.Equal(t, 1, countRows(t, db, "users"))
}

func TestBulkUpsertUsersNilProviderSkipsSync(t *testing.T) {
	im, db := newTestImporter(t, nil)
	ctx := context.Background()

	results, err := im.BulkUpsertUsers(ctx, []UserRecord{
		{ID: "u1", Email: "a@office.gov.bd"},
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, OutcomeCreated, results[0].Outcome)
	assert.Nil(t, results[0].AuthOK)
	assert.Equal(t, 1, countRows(t, db, "users"))
}

func TestBulkUpsertUsersSuppliedPasswordNotEchoed(t *testing.T) {
	idp := newFakeProvider()
	im, _ := newTestImporter(t, idp)
	ctx := context.Background()

	results, err := im.BulkUpsertUsers(ctx, []UserRecord{
		{ID: "u1", Email: "a@office.gov.bd", Password: "operator-chosen"},
	})
	require.NoError(t, err)
	require.Len(t, results, 1)

	// A caller-supplied credential is used but never echoed back.
	assert.Empty(t, results[0].Password)
	assert.Equal(t, "operator-chosen", idp.passwords["u1"])
}
