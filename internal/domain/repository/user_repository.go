// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"refill/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ProfileUpdate carries the replacement values for an update. Zero-valued
// fields preserve the currently stored value (COALESCE semantics).
type ProfileUpdate struct {
	Username       string
	Institution    string
	IconURL        string
	Email          string
	HashedPassword string
}

// UserRepository defines the standard operations for user persistence.
// The application layer depends on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByEmail retrieves a user by email, including the password digest
	// and all-time totals. Only credential checks may consume the digest.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByUsername retrieves a user by username without the password digest.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// InformationByEmail retrieves profile-facing information (no digest)
	// together with all-time totals.
	InformationByEmail(ctx context.Context, email string) (*entity.User, error)

	// CreateProfile persists a new user. The database fills ID and timestamps.
	CreateProfile(ctx context.Context, user *entity.User) error

	// UpdateProfile applies a partial update to the identified user and
	// returns the refreshed profile information.
	UpdateProfile(ctx context.Context, id uuid.UUID, update *ProfileUpdate) (*entity.User, error)

	// GetWeeklyBottles returns the per-day counts for the current calendar
	// week, or nil when the user has not submitted anything this week.
	GetWeeklyBottles(ctx context.Context, userID uuid.UUID) (*entity.WeeklyBottleStat, error)

	// UpdateBottlesAndWeeklyStats delegates to the add_bottles database
	// procedure, which atomically increments today's count, the weekly total
	// and the all-time totals, then returns the refreshed user information.
	UpdateBottlesAndWeeklyStats(ctx context.Context, userID uuid.UUID, bottles int) (*entity.User, error)

	// ScoreboardTop returns up to limit users ordered by total points
	// descending. Tie order is unspecified.
	ScoreboardTop(ctx context.Context, limit int) ([]*entity.ScoreboardEntry, error)
}
