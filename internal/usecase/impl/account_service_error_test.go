package impl

import (
	"context"
	"testing"

	"refill/internal/domain/entity"
	domainerrors "refill/internal/domain/errors"
	"refill/internal/domain/repository"
	mockRepo "refill/internal/mocks/repository"
	"refill/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAccountService_Register_EmailTaken(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByEmail(ctx, "taken@example.com").Return(&entity.User{ID: uuid.New()}, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Email:    "taken@example.com",
		Username: "newuser",
		Password: "plaintext",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailTaken))
}

func TestAccountService_Register_UsernameTaken(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByEmail(ctx, "new@example.com").Return(nil, repository.ErrUserNotFound)
			mockUserRepo.EXPECT().FindByUsername(ctx, "taken").Return(&entity.User{ID: uuid.New()}, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Email:    "new@example.com",
		Username: "taken",
		Password: "plaintext",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUsernameTaken))
}

func TestAccountService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "missing@example.com").Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "missing@example.com",
		Password: "plaintext",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:             uuid.New(),
		Email:          "user@example.com",
		HashedPassword: "stored-hash",
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, "user@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", "stored-hash").Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "user@example.com",
		Password: "wrong",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAccountService_Profile_UserNotFound(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().InformationByEmail(ctx, "gone@example.com").Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Profile(ctx, usecase.Identity{Email: "gone@example.com", UserID: uuid.New()})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestAccountService_UpdateProfile_UsernameBelongsToOther(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	userID := uuid.New()
	other := &entity.User{ID: uuid.New(), Username: "wanted"}

	fx.userRepo.EXPECT().FindByUsername(ctx, "wanted").Return(other, nil)

	user, err := fx.service.UpdateProfile(ctx, usecase.Identity{UserID: userID}, &usecase.UpdateProfileInput{
		Username:    "wanted",
		Institution: "Sea Shepherd",
		IconURL:     "https://cdn.example.com/icon.png",
		Email:       "user@example.com",
		Password:    "plaintext",
	})

	require.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUsernameTaken))
}

func TestAccountService_UpdateProfile_UserNotFound(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByUsername(ctx, "newname").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("plaintext").Return("hashed", nil)
	fx.userRepo.EXPECT().
		UpdateProfile(ctx, userID, mock.AnythingOfType("*repository.ProfileUpdate")).
		Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.UpdateProfile(ctx, usecase.Identity{UserID: userID}, &usecase.UpdateProfileInput{
		Username:    "newname",
		Institution: "Sea Shepherd",
		IconURL:     "https://cdn.example.com/icon.png",
		Email:       "user@example.com",
		Password:    "plaintext",
	})

	require.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestAccountService_UpdateBottles_UserNotFound(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().UpdateBottlesAndWeeklyStats(ctx, userID, 3).Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.UpdateBottles(ctx, usecase.Identity{UserID: userID}, 3)

	require.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestAccountService_Scoreboard_RepositoryFailure(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().ScoreboardTop(ctx, 5).Return(nil, errors.New("connection refused"))

	entries, err := fx.service.Scoreboard(ctx)

	require.Error(t, err)
	assert.Nil(t, entries)

	var appErr domainerrors.AppError
	assert.False(t, errors.As(err, &appErr))
}
