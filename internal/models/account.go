package models

import (
	"time"

	"github.com/google/uuid"
)

// AccountDB represents an account (organization) row in the database.
type AccountDB struct {
	AccountID uuid.UUID `json:"id" db:"account_id"`   // Primary key
	Name      string    `json:"name" db:"name"`       // Unique account name
	Created   time.Time `json:"created" db:"created"` // Creation timestamp, immutable
	Active    bool      `json:"active" db:"active"`   // Whether the account is active
}
