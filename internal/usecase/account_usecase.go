// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"refill/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
// Institution and IconURL are optional at registration time.
type RegisterInput struct {
	Email       string
	Username    string
	Password    string
	Institution string
	IconURL     string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// Identity carries the authenticated caller, as extracted from the session token.
type Identity struct {
	Email  string
	UserID uuid.UUID
}

// UpdateProfileInput defines the replacement profile fields. The password is
// provided in plain text and hashed before storage.
type UpdateProfileInput struct {
	Username    string
	Institution string
	IconURL     string
	Email       string
	Password    string
}

// --- Output DTOs ---

// AuthOutput returns the signed session token after registration or login.
type AuthOutput struct {
	Token string
}

// ProfileOutput bundles the account information with the per-day bottle counts
// of the current week. BottlesWeek is nil when no bottles were logged this week.
type ProfileOutput struct {
	User        *entity.User
	BottlesWeek *entity.WeeklyBottleStat
}

// AccountUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	Profile(ctx context.Context, identity Identity) (*ProfileOutput, error)
	UpdateProfile(ctx context.Context, identity Identity, input *UpdateProfileInput) (*entity.User, error)
	UpdateBottles(ctx context.Context, identity Identity, bottles int) (*entity.User, error)
	Scoreboard(ctx context.Context) ([]*entity.ScoreboardEntry, error)
}
