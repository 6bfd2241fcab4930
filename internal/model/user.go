package model

// User represents a staff account as stored in the `users` table.  The ID is
// the same identifier the external identity provider uses for the account,
// so the two stores can be reconciled by key.  Credentials are never stored
// here; the identity provider owns them.
//
// Fields:
//
//	ID        – identity-provider uid, primary key.
//	Email     – unique email address used for lookup at login.
//	Role      – "admin" or "user".
//	Status    – "active" or "inactive".
//	CreatedAt – timestamp assigned by the database on insert.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

// Roles accepted in users.role.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Statuses accepted in users.status.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)
