package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/tareqmahmud/letterdesk/internal/model"
)

// UserRepo encapsulates all database queries for the users table.
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo constructs a UserRepo with the provided DB handle, allowing
// dependency injection of the database in tests and at startup.
func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{db: db} }

const userCols = "id, email, role, status, created_at"

func scanUser(row interface{ Scan(...any) error }) (model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Email, &u.Role, &u.Status, &u.CreatedAt)
	return u, err
}

// List returns all users ordered by creation time, newest first.
func (r *UserRepo) List(ctx context.Context) ([]model.User, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+userCols+" FROM users ORDER BY created_at DESC, rowid DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]model.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id string) (model.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx,
		"SELECT "+userCols+" FROM users WHERE id = ? LIMIT 1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, ErrNotFound
	}
	return u, err
}

// GetByEmail fetches a user by normalized email.  Used at login to resolve
// the staff member's role after the identity provider has verified them.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	u, err := scanUser(r.db.QueryRowContext(ctx,
		"SELECT "+userCols+" FROM users WHERE email = ? LIMIT 1", email))
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, ErrNotFound
	}
	return u, err
}

// Create inserts a user.  Role and status fall back to their defaults when
// empty.  A duplicate id or email surfaces as ErrDuplicate.
func (r *UserRepo) Create(ctx context.Context, u model.User) error {
	if u.Role == "" {
		u.Role = model.RoleUser
	}
	if u.Status == "" {
		u.Status = model.StatusActive
	}
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO users (id, email, role, status) VALUES (?, ?, ?, ?)",
		u.ID, strings.ToLower(strings.TrimSpace(u.Email)), u.Role, u.Status)
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

// UserPatch carries the optional fields of a partial update.  Only the
// fields present in the request are applied.
type UserPatch struct {
	Email  *string `json:"email"`
	Role   *string `json:"role"`
	Status *string `json:"status"`
}

// Empty reports whether the patch carries no fields.
func (p UserPatch) Empty() bool {
	return p.Email == nil && p.Role == nil && p.Status == nil
}

// Update applies the non-nil fields of the patch.  The SET clauses are
// fixed strings chosen by field presence; request data is only ever bound
// as parameters.
func (r *UserRepo) Update(ctx context.Context, id string, p UserPatch) error {
	sets := make([]string, 0, 3)
	args := make([]any, 0, 4)
	if p.Email != nil {
		sets = append(sets, "email = ?")
		args = append(args, strings.ToLower(strings.TrimSpace(*p.Email)))
	}
	if p.Role != nil {
		sets = append(sets, "role = ?")
		args = append(args, *p.Role)
	}
	if p.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, *p.Status)
	}
	if len(sets) == 0 {
		return nil
	}
	args = append(args, id)
	res, err := r.db.ExecContext(ctx,
		"UPDATE users SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
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

// Delete removes a user permanently.  Activity records created by the user
// are kept; deletion does not cascade.
func (r *UserRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM users WHERE id = ?", id)
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
