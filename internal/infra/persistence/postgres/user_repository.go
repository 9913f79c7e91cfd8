package postgres

import (
	"context"
	"time"

	"refill/internal/domain/entity"
	"refill/internal/domain/repository"
	"refill/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByEmail retrieves a user by email including the password digest, for
// credential verification. Totals are loaded alongside.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("Totals").
		Where("email = ?", email).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM, true), nil
}

// FindByUsername retrieves a user by username. The password digest is never
// exposed on this path.
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("Totals").
		Where("username = ?", username).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	return toUserDomain(&userM, false), nil
}

// InformationByEmail retrieves profile-facing information by email, digest excluded.
func (repo *userRepository) InformationByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("Totals").
		Where("email = ?", email).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load user information by email")
	}

	return toUserDomain(&userM, false), nil
}

// CreateProfile persists a new user. The database generates the id and
// timestamps; unique-constraint violations surface as domain conflicts so the
// pre-insert checks cannot be raced past.
func (repo *userRepository) CreateProfile(ctx context.Context, user *entity.User) error {
	userM := &model.UserModel{
		Email:          user.Email,
		Username:       user.Username,
		HashedPassword: user.HashedPassword,
		Institution:    user.Institution,
		IconURL:        user.IconURL,
	}

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if conflictErr := translateUniqueViolation(err); conflictErr != nil {
			return conflictErr
		}

		return errors.Wrap(err, "failed to create user profile")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// UpdateProfile applies a partial update: zero-valued fields keep the stored
// value. Returns the refreshed row, digest excluded.
func (repo *userRepository) UpdateProfile(ctx context.Context, id uuid.UUID, update *repository.ProfileUpdate) (*entity.User, error) {
	updates := map[string]any{"updated_at": time.Now()}
	if update.Username != "" {
		updates["username"] = update.Username
	}
	if update.Institution != "" {
		updates["institution"] = update.Institution
	}
	if update.IconURL != "" {
		updates["icon_url"] = update.IconURL
	}
	if update.Email != "" {
		updates["email"] = update.Email
	}
	if update.HashedPassword != "" {
		updates["hashed_password"] = update.HashedPassword
	}

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		if conflictErr := translateUniqueViolation(result.Error); conflictErr != nil {
			return nil, conflictErr
		}

		return nil, errors.Wrap(result.Error, "failed to update user profile")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrUserNotFound
	}

	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to reload user after update")
	}

	return toUserDomain(&userM, false), nil
}

// GetWeeklyBottles returns the per-day counts for the current calendar week,
// or nil when the user has no row this week.
func (repo *userRepository) GetWeeklyBottles(ctx context.Context, userID uuid.UUID) (*entity.WeeklyBottleStat, error) {
	var statM model.WeeklyBottleStatModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND week_start = DATE_TRUNC('week', CURRENT_DATE)::DATE", userID).
		First(&statM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to load weekly bottle stats")
	}

	return &entity.WeeklyBottleStat{
		WeekStart: statM.WeekStart,
		Monday:    statM.Monday,
		Tuesday:   statM.Tuesday,
		Wednesday: statM.Wednesday,
		Thursday:  statM.Thursday,
		Friday:    statM.Friday,
		Saturday:  statM.Saturday,
		Sunday:    statM.Sunday,
		TotalWeek: statM.TotalWeek,
	}, nil
}

// UpdateBottlesAndWeeklyStats invokes the add_bottles procedure and returns
// the refreshed user information. The procedure is a no-op for unknown ids,
// which the follow-up read turns into ErrUserNotFound.
func (repo *userRepository) UpdateBottlesAndWeeklyStats(ctx context.Context, userID uuid.UUID, bottles int) (*entity.User, error) {
	if err := repo.db.WithContext(ctx).Exec("SELECT add_bottles(?, ?)", userID, bottles).Error; err != nil {
		return nil, errors.Wrap(err, "failed to execute add_bottles")
	}

	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("Totals").
		Where("id = ?", userID).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to reload user after bottle update")
	}

	return toUserDomain(&userM, false), nil
}

// scoreboardRow is the scan target for the leaderboard query.
type scoreboardRow struct {
	Username     string
	IconURL      string `gorm:"column:icon_url"`
	TotalPoints  int
	TotalBottles int
}

// ScoreboardTop returns up to limit users ordered by total points descending.
func (repo *userRepository) ScoreboardTop(ctx context.Context, limit int) ([]*entity.ScoreboardEntry, error) {
	var rows []scoreboardRow
	err := repo.db.WithContext(ctx).Raw(`
		SELECT u.username, u.icon_url,
			COALESCE(ut.total_points, 0) AS total_points,
			COALESCE(ut.total_bottles, 0) AS total_bottles
		FROM users u
		LEFT JOIN user_totals ut ON u.id = ut.user_id
		ORDER BY ut.total_points DESC
		LIMIT ?`, limit).
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to load scoreboard")
	}

	entries := make([]*entity.ScoreboardEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, &entity.ScoreboardEntry{
			Username:     row.Username,
			IconURL:      row.IconURL,
			TotalPoints:  row.TotalPoints,
			TotalBottles: row.TotalBottles,
		})
	}

	return entries, nil
}

// toUserDomain converts a GORM UserModel to a domain User entity.
// The password digest is only carried over on credential-check paths.
func toUserDomain(data *model.UserModel, withDigest bool) *entity.User {
	if data == nil {
		return nil
	}

	user := &entity.User{
		ID:          data.ID,
		Email:       data.Email,
		Username:    data.Username,
		Institution: data.Institution,
		IconURL:     data.IconURL,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
	if withDigest {
		user.HashedPassword = data.HashedPassword
	}
	if data.Totals != nil {
		user.Totals = &entity.UserTotals{
			TotalBottles: data.Totals.TotalBottles,
			TotalPoints:  data.Totals.TotalPoints,
		}
	}

	return user
}
