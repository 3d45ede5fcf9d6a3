package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database.
// It carries the password hash and is never serialized directly;
// read paths go through UserView.
type UserDB struct {
	UserID       uuid.UUID `db:"user_id"`       // Primary key
	Username     string    `db:"username"`      // Unique username
	PasswordHash string    `db:"password_hash"` // bcrypt hash
	IsActive     bool      `db:"is_active"`
	IsStaff      bool      `db:"is_staff"`
	IsSuperuser  bool      `db:"is_superuser"`
	DateJoined   time.Time `db:"date_joined"`
}

// UserView is the serialized shape of a user. The password hash is
// deliberately absent.
type UserView struct {
	ID          uuid.UUID   `json:"id"`
	Username    string      `json:"username"`
	IsActive    bool        `json:"is_active"`
	IsStaff     bool        `json:"is_staff"`
	IsSuperuser bool        `json:"is_superuser"`
	DateJoined  time.Time   `json:"date_joined"`
	Accounts    []AccountDB `json:"accounts"`
}

// NewUserView builds a UserView from a user row and its account memberships.
func NewUserView(u *UserDB, accounts []AccountDB) UserView {
	if accounts == nil {
		accounts = []AccountDB{}
	}
	return UserView{
		ID:          u.UserID,
		Username:    u.Username,
		IsActive:    u.IsActive,
		IsStaff:     u.IsStaff,
		IsSuperuser: u.IsSuperuser,
		DateJoined:  u.DateJoined,
		Accounts:    accounts,
	}
}
