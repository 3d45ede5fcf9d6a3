package models

import (
	"time"

	"github.com/google/uuid"
)

// ProfileDB represents a profile row. The user id is the primary key,
// so each user has at most one profile.
type ProfileDB struct {
	UserID uuid.UUID `db:"user_id"` // Primary key, FK to users
	About  string    `db:"about"`
	Joined time.Time `db:"joined"` // Creation timestamp, immutable
}

// ProfileView is the serialized shape of a profile with its user expanded.
type ProfileView struct {
	User   UserView  `json:"user"`
	About  string    `json:"about"`
	Joined time.Time `json:"joined"`
}
