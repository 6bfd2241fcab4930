package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/tareqmahmud/letterdesk/internal/model"
	"github.com/tareqmahmud/letterdesk/internal/numeral"
)

// ConsumerRepo encapsulates all database queries for the consumers table.
// Account numbers are normalized to English digits before every query, so
// callers may pass either digit alphabet.
type ConsumerRepo struct {
	db *sql.DB
}

func NewConsumerRepo(db *sql.DB) *ConsumerRepo { return &ConsumerRepo{db: db} }

const consumerCols = "id, accNo, name, guardian, meterNo, mobile, address, tarrif, created_at"

func scanConsumer(row interface{ Scan(...any) error }) (model.Consumer, error) {
	var c model.Consumer
	err := row.Scan(&c.ID, &c.AccNo, &c.Name, &c.Guardian, &c.MeterNo,
		&c.Mobile, &c.Address, &c.Tarrif, &c.CreatedAt)
	return c, err
}

// List returns one page of consumers ordered by creation time descending,
// plus the total row count so callers can compute ceil(total/limit) pages.
// page is 1-based.
func (r *ConsumerRepo) List(ctx context.Context, page, limit int) ([]model.Consumer, int, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	var total int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM consumers").Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.QueryContext(ctx,
		"SELECT "+consumerCols+" FROM consumers ORDER BY created_at DESC, rowid DESC LIMIT ? OFFSET ?",
		limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	consumers := make([]model.Consumer, 0, limit)
	for rows.Next() {
		c, err := scanConsumer(rows)
		if err != nil {
			return nil, 0, err
		}
		consumers = append(consumers, c)
	}
	return consumers, total, rows.Err()
}

// GetByAccNo fetches a consumer by account number in either digit alphabet.
func (r *ConsumerRepo) GetByAccNo(ctx context.Context, accNo string) (model.Consumer, error) {
	c, err := scanConsumer(r.db.QueryRowContext(ctx,
		"SELECT "+consumerCols+" FROM consumers WHERE accNo = ? LIMIT 1",
		numeral.ToEnglish(accNo)))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Consumer{}, ErrNotFound
	}
	return c, err
}

// Create inserts a consumer.  Numeral fields are stored canonically; a
// duplicate accNo surfaces as ErrDuplicate and leaves the existing row
// untouched.
func (r *ConsumerRepo) Create(ctx context.Context, c model.Consumer) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO consumers (id, accNo, name, guardian, meterNo, mobile, address, tarrif) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		c.ID, numeral.ToEnglish(c.AccNo), c.Name, c.Guardian,
		numeral.ToEnglish(c.MeterNo), numeral.ToEnglish(c.Mobile), c.Address, c.Tarrif)
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

// ConsumerPatch carries the optional fields of a partial update keyed by
// accNo.  The account number itself is immutable.
type ConsumerPatch struct {
	Name     *string `json:"name"`
	Guardian *string `json:"guardian"`
	MeterNo  *string `json:"meterNo"`
	Mobile   *string `json:"mobile"`
	Address  *string `json:"address"`
	Tarrif   *string `json:"tarrif"`
}

func (p ConsumerPatch) Empty() bool {
	return p.Name == nil && p.Guardian == nil && p.MeterNo == nil &&
		p.Mobile == nil && p.Address == nil && p.Tarrif == nil
}

// Update applies the non-nil patch fields to the consumer with the given
// account number.  SET clauses are fixed strings selected by presence.
func (r *ConsumerRepo) Update(ctx context.Context, accNo string, p ConsumerPatch) error {
	sets := make([]string, 0, 6)
	args := make([]any, 0, 7)
	if p.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *p.Name)
	}
	if p.Guardian != nil {
		sets = append(sets, "guardian = ?")
		args = append(args, *p.Guardian)
	}
	if p.MeterNo != nil {
		sets = append(sets, "meterNo = ?")
		args = append(args, numeral.ToEnglish(*p.MeterNo))
	}
	if p.Mobile != nil {
		sets = append(sets, "mobile = ?")
		args = append(args, numeral.ToEnglish(*p.Mobile))
	}
	if p.Address != nil {
		sets = append(sets, "address = ?")
		args = append(args, *p.Address)
	}
	if p.Tarrif != nil {
		sets = append(sets, "tarrif = ?")
		args = append(args, *p.Tarrif)
	}
	if len(sets) == 0 {
		return nil
	}
	args = append(args, numeral.ToEnglish(accNo))
	res, err := r.db.ExecContext(ctx,
		"UPDATE consumers SET "+strings.Join(sets, ", ")+" WHERE accNo = ?", args...)
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

// DeleteByAccNo removes a consumer by account number.
func (r *ConsumerRepo) DeleteByAccNo(ctx context.Context, accNo string) error {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM consumers WHERE accNo = ?", numeral.ToEnglish(accNo))
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
