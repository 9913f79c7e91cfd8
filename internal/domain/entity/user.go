// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a registered account.
// HashedPassword is only populated by lookups that feed credential checks;
// it must never be serialized or logged.
type User struct {
	ID             uuid.UUID   // Unique identifier, generated by the database.
	Email          string      // Primary login identifier, globally unique.
	Username       string      // Public display handle, globally unique.
	HashedPassword string      // bcrypt digest. Empty on profile-facing lookups.
	Institution    string      // Optional affiliation (school, company, team).
	IconURL        string      // Optional avatar URL.
	Totals         *UserTotals // All-time counters, nil when not loaded.
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// UserTotals is the all-time aggregate kept one-to-one with a User.
// It is owned by the add_bottles database procedure and read-only here.
type UserTotals struct {
	TotalBottles int
	TotalPoints  int
}
