package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/tareqmahmud/letterdesk/internal/identity"
	"github.com/tareqmahmud/letterdesk/internal/model"
)

// UserRecord is one input row of a bulk user upsert.  Resync forces an
// identity-provider task for a user that already exists locally; by
// default existing users are updated locally only and their credential is
// left untouched.
type UserRecord struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Status   string `json:"status"`
	Password string `json:"password,omitempty"`
	Resync   bool   `json:"resync,omitempty"`
}

// UserResult is the per-record outcome.  Password is set only when a
// credential was generated for a newly created account, so the operator
// can hand it off once.  AuthOK/AuthError report the identity-provider
// phase and are absent when no task ran for the record.
type UserResult struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	Outcome   Outcome `json:"outcome"`
	Reason    string  `json:"reason,omitempty"`
	Password  string  `json:"password,omitempty"`
	AuthOK    *bool   `json:"authOk,omitempty"`
	AuthError string  `json:"authError,omitempty"`
}

// authTask is one queued identity-provider operation, processed after the
// local transaction commits.
type authTask struct {
	resultIdx int
	id        string
	email     string
	password  string
}

// BulkUpsertUsers applies a batch of user records.  Invalid records are
// rejected individually before the transaction; all valid local writes
// happen in one atomic transaction (a constraint violation rolls the whole
// batch back and is returned as an error).  After commit, queued identity
// tasks run sequentially; each failure is recorded on its own record and
// never aborts the rest.
func (im *Importer) BulkUpsertUsers(ctx context.Context, records []UserRecord) ([]UserResult, error) {
	results := make([]UserResult, len(records))
	var tasks []authTask

	tx, err := im.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	for i, rec := range records {
		rec.Email = strings.ToLower(strings.TrimSpace(rec.Email))
		results[i] = UserResult{ID: rec.ID, Email: rec.Email}
		if rec.ID == "" || rec.Email == "" {
			results[i].Outcome = OutcomeRejected
			results[i].Reason = "missing id or email"
			continue
		}
		role := rec.Role
		if role == "" {
			role = model.RoleUser
		}
		status := rec.Status
		if status == "" {
			status = model.StatusActive
		}

		var exists string
		err := tx.QueryRowContext(ctx, "SELECT id FROM users WHERE id = ?", rec.ID).Scan(&exists)
		switch {
		case err == nil:
			if _, err := tx.ExecContext(ctx,
				"UPDATE users SET email = ?, role = ?, status = ? WHERE id = ?",
				rec.Email, role, status, rec.ID); err != nil {
				return nil, err
			}
			results[i].Outcome = OutcomeUpdated
			if rec.Resync {
				tasks = append(tasks, authTask{resultIdx: i, id: rec.ID, email: rec.Email, password: rec.Password})
			}
		case errors.Is(err, sql.ErrNoRows):
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO users (id, email, role, status) VALUES (?, ?, ?, ?)",
				rec.ID, rec.Email, role, status); err != nil {
				return nil, err
			}
			results[i].Outcome = OutcomeCreated
			password := rec.Password
			if password == "" {
				password = generatePassword()
				results[i].Password = password
			}
			tasks = append(tasks, authTask{resultIdx: i, id: rec.ID, email: rec.Email, password: password})
		default:
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	im.syncAuthTasks(ctx, results, tasks)
	return results, nil
}

// syncAuthTasks mirrors queued records into the identity provider, one
// bounded call at a time.  Sequential on purpose: the provider API is rate
// limited and must not see the whole batch as a burst.
func (im *Importer) syncAuthTasks(ctx context.Context, results []UserResult, tasks []authTask) {
	if im.IDP == nil || len(tasks) == 0 {
		return
	}
	for _, t := range tasks {
		err := im.syncOne(ctx, t)
		ok := err == nil
		results[t.resultIdx].AuthOK = &ok
		if err != nil {
			results[t.resultIdx].AuthError = err.Error()
			im.Log.Warn("identity sync failed",
				zap.String("id", t.id), zap.Error(err))
		}
	}
}

func (im *Importer) syncOne(ctx context.Context, t authTask) error {
	callCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := im.IDP.Lookup(callCtx, t.id)
	switch {
	case err == nil:
		// Account exists: align the email, never touch the credential.
		return im.IDP.UpdateEmail(callCtx, t.id, t.email)
	case errors.Is(err, identity.ErrAccountNotFound):
		return im.IDP.Create(callCtx, identity.Account{ID: t.id, Email: t.email}, t.password)
	default:
		return err
	}
}
