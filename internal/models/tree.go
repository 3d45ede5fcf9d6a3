package models

import "github.com/google/uuid"

// TreeDB represents a tree species in the catalog.
type TreeDB struct {
	TreeID         uuid.UUID `json:"id" db:"tree_id"` // Primary key
	Name           string    `json:"name" db:"name"`  // Unique common name
	ScientificName string    `json:"scientific_name" db:"scientific_name"`
}
