// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "refill/internal/delivery/context"
	"refill/internal/domain/entity"
	domainerrors "refill/internal/domain/errors"
	"refill/internal/domain/repository"
	"refill/internal/domain/service"
	"refill/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// scoreboardLimit caps the leaderboard at the five highest-scoring users.
const scoreboardLimit = 5

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account after checking that neither the email nor the
// username is already taken. The checks and the insert share one transaction;
// the storage-level unique constraints close the remaining race window.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	var registered *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		if _, err := userRepo.FindByEmail(ctx, input.Email); err == nil {
			return domainerrors.ErrEmailTaken.WrapMessage("email already registered")
		} else if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check email availability")
		}

		if _, err := userRepo.FindByUsername(ctx, input.Username); err == nil {
			return domainerrors.ErrUsernameTaken.WrapMessage("username already registered")
		} else if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check username availability")
		}

		hashedPassword, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return errors.Wrap(err, "failed to hash password during registration")
		}

		newUser := &entity.User{
			Email:          input.Email,
			Username:       input.Username,
			HashedPassword: hashedPassword,
			Institution:    input.Institution,
			IconURL:        input.IconURL,
		}
		if err := userRepo.CreateProfile(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during registration")
		}

		registered = newUser

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	token, err := srv.tokenService.Issue(registered)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token after registration", slog.Any("userID", registered.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue session token after registration")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", registered.ID))

	return &usecase.AuthOutput{Token: token}, nil
}

// Login verifies the credentials and issues a fresh session token. Unknown
// emails and wrong passwords share one error so callers cannot probe which
// emails are registered.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login attempt for unknown email", slog.String("email", input.Email))

			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("unknown email")
		}

		return nil, errors.Wrap(err, "failed to find user during login")
	}

	if !srv.hasher.Check(input.Password, user.HashedPassword) {
		srv.log(ctx).Warn("Login attempt with wrong password", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("password mismatch")
	}

	token, err := srv.tokenService.Issue(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token during login")
	}

	srv.log(ctx).Debug("Login completed", slog.Any("userID", user.ID))

	return &usecase.AuthOutput{Token: token}, nil
}

// Profile loads the caller's account information together with this week's
// bottle counts.
func (srv *accountService) Profile(ctx context.Context, identity usecase.Identity) (*usecase.ProfileOutput, error) {
	user, err := srv.userRepo.InformationByEmail(ctx, identity.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("no account for token email")
		}

		return nil, errors.Wrap(err, "failed to load profile information")
	}

	bottlesWeek, err := srv.userRepo.GetWeeklyBottles(ctx, user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load weekly bottle stats")
	}

	return &usecase.ProfileOutput{User: user, BottlesWeek: bottlesWeek}, nil
}

// UpdateProfile replaces the caller's profile fields. The new username must
// not belong to a different account; email collisions surface from the storage
// constraint as a conflict.
func (srv *accountService) UpdateProfile(ctx context.Context, identity usecase.Identity, input *usecase.UpdateProfileInput) (*entity.User, error) {
	if input.Username != "" {
		existing, err := srv.userRepo.FindByUsername(ctx, input.Username)
		if err == nil && existing.ID != identity.UserID {
			return nil, domainerrors.ErrUsernameTaken.WrapMessage("username belongs to another account")
		}
		if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(err, "failed to check username availability")
		}
	}

	update := &repository.ProfileUpdate{
		Username:    input.Username,
		Institution: input.Institution,
		IconURL:     input.IconURL,
		Email:       input.Email,
	}
	if input.Password != "" {
		hashedPassword, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return nil, errors.Wrap(err, "failed to hash password during profile update")
		}
		update.HashedPassword = hashedPassword
	}

	user, err := srv.userRepo.UpdateProfile(ctx, identity.UserID, update)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("no account for token user id")
		}

		srv.log(ctx).Error("Failed to update profile", slog.Any("userID", identity.UserID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Profile updated", slog.Any("userID", user.ID))

	return user, nil
}

// UpdateBottles records newly collected bottles for the caller and returns the
// refreshed account information with the recalculated totals.
func (srv *accountService) UpdateBottles(ctx context.Context, identity usecase.Identity, bottles int) (*entity.User, error) {
	user, err := srv.userRepo.UpdateBottlesAndWeeklyStats(ctx, identity.UserID, bottles)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("no account for token user id")
		}

		return nil, errors.Wrap(err, "failed to update bottle counts")
	}

	srv.log(ctx).Debug("Bottles updated", slog.Any("userID", user.ID), slog.Int("bottles", bottles))

	return user, nil
}

// Scoreboard returns the highest-scoring users ordered by total points.
func (srv *accountService) Scoreboard(ctx context.Context) ([]*entity.ScoreboardEntry, error) {
	entries, err := srv.userRepo.ScoreboardTop(ctx, scoreboardLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load scoreboard")
	}

	return entries, nil
}
