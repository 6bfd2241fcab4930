package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/tareqmahmud/letterdesk/internal/model"
)

// ActivityRepo encapsulates all database queries for the letter_activities
// table.
type ActivityRepo struct {
	db *sql.DB
}

func NewActivityRepo(db *sql.DB) *ActivityRepo { return &ActivityRepo{db: db} }

const activityCols = "id, accountNumber, consumerName, subject, createdBy, date, letterType, formData, created_at"

func scanActivity(row interface{ Scan(...any) error }) (model.LetterActivity, error) {
	var a model.LetterActivity
	var letterType, formData sql.NullString
	err := row.Scan(&a.ID, &a.AccountNumber, &a.ConsumerName, &a.Subject,
		&a.CreatedBy, &a.Date, &letterType, &formData, &a.CreatedAt)
	a.LetterType = letterType.String
	if formData.Valid && formData.String != "" {
		a.FormData = []byte(formData.String)
	}
	return a, err
}

// ActivityFilter narrows List results.  Zero values mean "no filter";
// Limit defaults to 100.
type ActivityFilter struct {
	CreatedBy string
	Date      string
	Limit     int
}

// List returns activities newest first, optionally filtered by creator
// and calendar day.
func (r *ActivityRepo) List(ctx context.Context, f ActivityFilter) ([]model.LetterActivity, error) {
	q := "SELECT " + activityCols + " FROM letter_activities WHERE 1=1"
	args := make([]any, 0, 3)
	if f.CreatedBy != "" {
		q += " AND createdBy = ?"
		args = append(args, f.CreatedBy)
	}
	if f.Date != "" {
		q += " AND date = ?"
		args = append(args, f.Date)
	}
	limit := f.Limit
	if limit <= 0 {
		limit = 100
	}
	q += " ORDER BY created_at DESC, rowid DESC LIMIT ?"
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	acts := make([]model.LetterActivity, 0)
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		acts = append(acts, a)
	}
	return acts, rows.Err()
}

// GetByID fetches one activity.
func (r *ActivityRepo) GetByID(ctx context.Context, id string) (model.LetterActivity, error) {
	a, err := scanActivity(r.db.QueryRowContext(ctx,
		"SELECT "+activityCols+" FROM letter_activities WHERE id = ? LIMIT 1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.LetterActivity{}, ErrNotFound
	}
	return a, err
}

// FindByKey looks up an activity by the duplicate-suppression key
// (accountNumber, subject, date).  Returns ErrNotFound when no letter has
// been logged for that key.
func (r *ActivityRepo) FindByKey(ctx context.Context, accountNumber, subject, date string) (model.LetterActivity, error) {
	a, err := scanActivity(r.db.QueryRowContext(ctx,
		"SELECT "+activityCols+" FROM letter_activities WHERE accountNumber = ? AND subject = ? AND date = ? LIMIT 1",
		accountNumber, subject, date))
	if errors.Is(err, sql.ErrNoRows) {
		return model.LetterActivity{}, ErrNotFound
	}
	return a, err
}

// Create inserts an activity record.
func (r *ActivityRepo) Create(ctx context.Context, a model.LetterActivity) error {
	var formData any
	if len(a.FormData) > 0 {
		formData = string(a.FormData)
	}
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO letter_activities (id, accountNumber, consumerName, subject, createdBy, date, letterType, formData) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		a.ID, a.AccountNumber, a.ConsumerName, a.Subject, a.CreatedBy, a.Date, a.LetterType, formData)
	return err
}

// Delete removes an activity by id.
func (r *ActivityRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM letter_activities WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
