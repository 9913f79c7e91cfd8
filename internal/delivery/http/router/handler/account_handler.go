// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"refill/internal/delivery/http/middleware"
	"refill/internal/delivery/http/response"
	"refill/internal/domain/entity"
	domainerrors "refill/internal/domain/errors"
	"refill/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler holds dependencies for account-related handlers.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		logger: logger,
	}
}

// --- Request payloads ---

type registerRequest struct {
	Email       string `json:"email" validate:"required"`
	Username    string `json:"username" validate:"required"`
	Password    string `json:"password" validate:"required"`
	Institution string `json:"institution"`
	IconURL     string `json:"icon_url"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type updateProfileRequest struct {
	Username    string `json:"username" validate:"required"`
	Institution string `json:"institution" validate:"required"`
	IconURL     string `json:"icon_url" validate:"required"`
	Email       string `json:"email" validate:"required"`
	Password    string `json:"password" validate:"required"`
}

// The required rule treats a zero count the same as an absent field, so
// logging zero bottles is rejected like a missing value.
type updateBottlesRequest struct {
	Bottles int `json:"bottles" validate:"required"`
}

// --- Response payloads ---

type accountInformation struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	Institution  string    `json:"institution"`
	IconURL      string    `json:"icon_url"`
	TotalBottles int       `json:"total_bottles"`
	TotalPoints  int       `json:"total_points"`
}

type updatedInformation struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	Username    string    `json:"username"`
	Institution string    `json:"institution"`
	IconURL     string    `json:"icon_url"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type weeklyBottles struct {
	WeekStart time.Time `json:"week_start"`
	Monday    int       `json:"monday"`
	Tuesday   int       `json:"tuesday"`
	Wednesday int       `json:"wednesday"`
	Thursday  int       `json:"thursday"`
	Friday    int       `json:"friday"`
	Saturday  int       `json:"saturday"`
	Sunday    int       `json:"sunday"`
	TotalWeek int       `json:"total_week"`
}

type scoreboardEntry struct {
	Username     string `json:"username"`
	IconURL      string `json:"icon_url"`
	TotalPoints  int    `json:"total_points"`
	TotalBottles int    `json:"total_bottles"`
}

// Register handles the account registration request.
func (h *AccountHandler) Register(c echo.Context) error {
	var input registerRequest
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrRegistrationFieldsRequired.WrapMessage("malformed registration payload")
	}
	if err := c.Validate(&input); err != nil {
		return domainerrors.ErrRegistrationFieldsRequired.WrapMessage("missing registration fields")
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Email:       input.Email,
		Username:    input.Username,
		Password:    input.Password,
		Institution: input.Institution,
		IconURL:     input.IconURL,
	})
	if err != nil {
		return opError(err, domainerrors.ErrRegisterFailed)
	}

	return response.Token(c, http.StatusCreated, "User registered successfully", output.Token)
}

// Login handles the login request.
func (h *AccountHandler) Login(c echo.Context) error {
	var input loginRequest
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrLoginFieldsRequired.WrapMessage("malformed login payload")
	}
	if err := c.Validate(&input); err != nil {
		return domainerrors.ErrLoginFieldsRequired.WrapMessage("missing login fields")
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		return opError(err, domainerrors.ErrLoginFailed)
	}

	return response.Token(c, http.StatusOK, "User logged in successfully", output.Token)
}

// Profile returns the caller's account information and this week's bottle counts.
func (h *AccountHandler) Profile(c echo.Context) error {
	identity, err := identityFrom(c)
	if err != nil {
		return err
	}

	output, err := h.uc.Profile(c.Request().Context(), identity)
	if err != nil {
		return opError(err, domainerrors.ErrProfileFailed)
	}

	var bottles any
	if output.BottlesWeek != nil {
		bottles = toWeeklyBottles(output.BottlesWeek)
	}

	return response.Profile(c, http.StatusOK, "User profile information", toAccountInformation(output.User), bottles)
}

// UpdateProfile replaces the caller's profile fields.
func (h *AccountHandler) UpdateProfile(c echo.Context) error {
	var input updateProfileRequest
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrProfileFieldsRequired.WrapMessage("malformed profile payload")
	}
	if err := c.Validate(&input); err != nil {
		return domainerrors.ErrProfileFieldsRequired.WrapMessage("missing profile fields")
	}

	identity, err := identityFrom(c)
	if err != nil {
		return err
	}

	user, err := h.uc.UpdateProfile(c.Request().Context(), identity, &usecase.UpdateProfileInput{
		Username:    input.Username,
		Institution: input.Institution,
		IconURL:     input.IconURL,
		Email:       input.Email,
		Password:    input.Password,
	})
	if err != nil {
		return opError(err, domainerrors.ErrProfileUpdateFailed)
	}

	return response.Information(c, http.StatusOK, "User profile updated successfully", toUpdatedInformation(user))
}

// UpdateBottles records newly collected bottles for the caller.
func (h *AccountHandler) UpdateBottles(c echo.Context) error {
	var input updateBottlesRequest
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrBottlesRequired.WrapMessage("malformed bottles payload")
	}
	if err := c.Validate(&input); err != nil {
		return domainerrors.ErrBottlesRequired.WrapMessage("missing bottles count")
	}

	identity, err := identityFrom(c)
	if err != nil {
		return err
	}

	user, err := h.uc.UpdateBottles(c.Request().Context(), identity, input.Bottles)
	if err != nil {
		return opError(err, domainerrors.ErrBottlesUpdateFailed)
	}

	return response.Information(c, http.StatusOK, "User bottles updated successfully", toAccountInformation(user))
}

// Scoreboard returns the five highest-scoring users.
func (h *AccountHandler) Scoreboard(c echo.Context) error {
	entries, err := h.uc.Scoreboard(c.Request().Context())
	if err != nil {
		return opError(err, domainerrors.ErrScoreboardFailed)
	}

	rows := make([]scoreboardEntry, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, scoreboardEntry{
			Username:     entry.Username,
			IconURL:      entry.IconURL,
			TotalPoints:  entry.TotalPoints,
			TotalBottles: entry.TotalBottles,
		})
	}

	return response.Information(c, http.StatusOK, "Scoreboard information", rows)
}

// identityFrom rebuilds the authenticated identity stored by the auth middleware.
func identityFrom(c echo.Context) (usecase.Identity, error) {
	email, _ := c.Get(middleware.KeyEmail).(string)
	userID, ok := c.Get(middleware.KeyUserID).(uuid.UUID)
	if email == "" || !ok {
		return usecase.Identity{}, domainerrors.ErrInvalidToken.WrapMessage("identity missing from request context")
	}

	return usecase.Identity{Email: email, UserID: userID}, nil
}

// opError passes domain errors through untouched and downgrades everything
// else to the operation's internal fallback. The cause stays attached for the
// server-side log; the client only ever sees the fallback message.
func opError(err error, fallback *domainerrors.BaseError) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	return fallback.WrapMessage(err.Error())
}

func toAccountInformation(user *entity.User) accountInformation {
	info := accountInformation{
		ID:          user.ID,
		Email:       user.Email,
		Username:    user.Username,
		Institution: user.Institution,
		IconURL:     user.IconURL,
	}
	if user.Totals != nil {
		info.TotalBottles = user.Totals.TotalBottles
		info.TotalPoints = user.Totals.TotalPoints
	}

	return info
}

func toUpdatedInformation(user *entity.User) updatedInformation {
	return updatedInformation{
		ID:          user.ID,
		Email:       user.Email,
		Username:    user.Username,
		Institution: user.Institution,
		IconURL:     user.IconURL,
		UpdatedAt:   user.UpdatedAt,
	}
}

func toWeeklyBottles(stat *entity.WeeklyBottleStat) weeklyBottles {
	return weeklyBottles{
		WeekStart: stat.WeekStart,
		Monday:    stat.Monday,
		Tuesday:   stat.Tuesday,
		Wednesday: stat.Wednesday,
		Thursday:  stat.Thursday,
		Friday:    stat.Friday,
		Saturday:  stat.Saturday,
		Sunday:    stat.Sunday,
		TotalWeek: stat.TotalWeek,
	}
}
