package models

import (
	"time"

	"github.com/google/uuid"
)

// PlantedTreeDB represents one tree planted by a user on behalf of an
// account at a geographic location.
type PlantedTreeDB struct {
	PlantedTreeID uuid.UUID `db:"planted_tree_id"` // Primary key
	UserID        uuid.UUID `db:"user_id"`         // FK to users, cascade delete
	AccountID     uuid.UUID `db:"account_id"`      // FK to accounts, cascade delete
	TreeID        uuid.UUID `db:"tree_id"`         // FK to trees, cascade delete
	PlantedAt     time.Time `db:"planted_at"`      // Defaults to insert time
	Latitude      float64   `db:"latitude"`        // numeric(9,6)
	Longitude     float64   `db:"longitude"`       // numeric(9,6)
}

// Age returns the planting's age in whole years at the given time,
// adjusted so an anniversary that has not yet occurred this year does
// not count.
func (p *PlantedTreeDB) Age(now time.Time) int {
	years := now.Year() - p.PlantedAt.Year()
	if now.Month() < p.PlantedAt.Month() ||
		(now.Month() == p.PlantedAt.Month() && now.Day() < p.PlantedAt.Day()) {
		years--
	}
	return years
}

// Location returns the latitude/longitude pair.
func (p *PlantedTreeDB) Location() [2]float64 {
	return [2]float64{p.Latitude, p.Longitude}
}

// PlantedTreeView is the serialized shape of a planting with its
// referenced entities expanded.
type PlantedTreeView struct {
	ID        uuid.UUID  `json:"id"`
	Tree      TreeDB     `json:"tree"`
	User      UserView   `json:"user"`
	Account   AccountDB  `json:"account"`
	PlantedAt time.Time  `json:"planted_at"`
	Latitude  float64    `json:"latitude"`
	Longitude float64    `json:"longitude"`
	Age       int        `json:"age"`
	Location  [2]float64 `json:"location"`
}

// TreePlanting is one item of a batch planting request: a tree species
// and the location to plant it at.
type TreePlanting struct {
	TreeID    uuid.UUID `json:"tree_id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
}

// PlantingEvent is the message published to Kafka after a successful planting.
type PlantingEvent struct {
	EventID       string  `json:"event_id"`
	PlantedTreeID string  `json:"planted_tree_id"`
	UserID        string  `json:"user_id"`
	AccountID     string  `json:"account_id"`
	TreeID        string  `json:"tree_id"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	Timestamp     int64   `json:"timestamp"`
}
