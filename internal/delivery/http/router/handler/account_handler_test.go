package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpmiddleware "refill/internal/delivery/http/middleware"
	"refill/internal/delivery/http/validator"
	"refill/internal/domain/entity"
	domainerrors "refill/internal/domain/errors"
	mockUsecase "refill/internal/mocks/usecase"
	"refill/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// newTestServer wires a full echo pipeline (validator plus error handler)
// around the account handler so tests observe the real wire format.
func newTestServer(t *testing.T, identity usecase.Identity) (*echo.Echo, *mockUsecase.MockAccountUsecase) {
	t.Helper()

	uc := mockUsecase.NewMockAccountUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewAccountHandler(uc, logger)

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = httpmiddleware.NewErrorMiddleware(logger).HandleHTTPError

	withIdentity := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(httpmiddleware.KeyEmail, identity.Email)
			c.Set(httpmiddleware.KeyUserID, identity.UserID)

			return next(c)
		}
	}

	e.POST("/api/users/register", h.Register)
	e.POST("/api/users/login", h.Login)
	e.GET("/api/users/profile", h.Profile, withIdentity)
	e.POST("/api/users/updateProfile", h.UpdateProfile, withIdentity)
	e.POST("/api/users/updateBottles", h.UpdateBottles, withIdentity)
	e.GET("/api/users/scoreboard", h.Scoreboard, withIdentity)

	return e, uc
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestAccountHandler_Register_Success(t *testing.T) {
	e, uc := newTestServer(t, usecase.Identity{})

	uc.EXPECT().
		Register(mock.Anything, mock.AnythingOfType("*usecase.RegisterInput")).
		Run(func(ctx context.Context, input *usecase.RegisterInput) {
			assert.Equal(t, "new@example.com", input.Email)
			assert.Equal(t, "newuser", input.Username)
		}).
		Return(&usecase.AuthOutput{Token: "signed-token"}, nil)

	rec := doJSON(e, http.MethodPost, "/api/users/register",
		`{"email":"new@example.com","username":"newuser","password":"secret"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok":true`)
	assert.Contains(t, rec.Body.String(), "User registered successfully")
	assert.Contains(t, rec.Body.String(), `"tk":"signed-token"`)
}

func TestAccountHandler_Register_MissingFields(t *testing.T) {
	e, _ := newTestServer(t, usecase.Identity{})

	rec := doJSON(e, http.MethodPost, "/api/users/register", `{"email":"new@example.com"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok":false`)
	assert.Contains(t, rec.Body.String(), "The email, username and password are required")
}

func TestAccountHandler_Register_EmailTaken(t *testing.T) {
	e, uc := newTestServer(t, usecase.Identity{})

	uc.EXPECT().
		Register(mock.Anything, mock.AnythingOfType("*usecase.RegisterInput")).
		Return(nil, domainerrors.ErrEmailTaken.WrapMessage("email already registered"))

	rec := doJSON(e, http.MethodPost, "/api/users/register",
		`{"email":"taken@example.com","username":"newuser","password":"secret"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "The email is already in use")
}

func TestAccountHandler_Register_InternalError(t *testing.T) {
	e, uc := newTestServer(t, usecase.Identity{})

	uc.EXPECT().
		Register(mock.Anything, mock.AnythingOfType("*usecase.RegisterInput")).
		Return(nil, errors.New("connection refused"))

	rec := doJSON(e, http.MethodPost, "/api/users/register",
		`{"email":"new@example.com","username":"newuser","password":"secret"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "An error ocurred while trying to register the user")
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestAccountHandler_Login_Success(t *testing.T) {
	e, uc := newTestServer(t, usecase.Identity{})

	uc.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(&usecase.AuthOutput{Token: "signed-token"}, nil)

	rec := doJSON(e, http.MethodPost, "/api/users/login",
		`{"email":"user@example.com","password":"secret"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "User logged in successfully")
	assert.Contains(t, rec.Body.String(), `"tk":"signed-token"`)
}

func TestAccountHandler_Login_MissingFields(t *testing.T) {
	e, _ := newTestServer(t, usecase.Identity{})

	rec := doJSON(e, http.MethodPost, "/api/users/login", `{"email":"user@example.com"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "The email and password are required")
}

func TestAccountHandler_Login_BadCredentials(t *testing.T) {
	e, uc := newTestServer(t, usecase.Identity{})

	uc.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(nil, domainerrors.ErrInvalidCredentials.WrapMessage("password mismatch"))

	rec := doJSON(e, http.MethodPost, "/api/users/login",
		`{"email":"user@example.com","password":"wrong"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "The email or password is incorrect")
}

func TestAccountHandler_Profile_Success(t *testing.T) {
	identity := usecase.Identity{Email: "user@example.com", UserID: uuid.New()}
	e, uc := newTestServer(t, identity)

	uc.EXPECT().Profile(mock.Anything, identity).Return(&usecase.ProfileOutput{
		User: &entity.User{
			ID:       identity.UserID,
			Email:    identity.Email,
			Username: "user",
			Totals:   &entity.UserTotals{TotalBottles: 12, TotalPoints: 12},
		},
		BottlesWeek: &entity.WeeklyBottleStat{
			WeekStart: time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC),
			Monday:    3,
			TotalWeek: 3,
		},
	}, nil)

	rec := doJSON(e, http.MethodGet, "/api/users/profile", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "User profile information")
	assert.Contains(t, rec.Body.String(), `"total_bottles":12`)
	assert.Contains(t, rec.Body.String(), `"bottles_week"`)
	assert.Contains(t, rec.Body.String(), `"total_week":3`)
}

func TestAccountHandler_Profile_NoBottlesThisWeek(t *testing.T) {
	identity := usecase.Identity{Email: "user@example.com", UserID: uuid.New()}
	e, uc := newTestServer(t, identity)

	uc.EXPECT().Profile(mock.Anything, identity).Return(&usecase.ProfileOutput{
		User: &entity.User{ID: identity.UserID, Email: identity.Email},
	}, nil)

	rec := doJSON(e, http.MethodGet, "/api/users/profile", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "bottles_week")
}

func TestAccountHandler_Profile_NotFound(t *testing.T) {
	identity := usecase.Identity{Email: "gone@example.com", UserID: uuid.New()}
	e, uc := newTestServer(t, identity)

	uc.EXPECT().Profile(mock.Anything, identity).
		Return(nil, domainerrors.ErrUserNotFound.WrapMessage("no account for token email"))

	rec := doJSON(e, http.MethodGet, "/api/users/profile", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "User not found")
}

func TestAccountHandler_UpdateProfile_MissingFields(t *testing.T) {
	identity := usecase.Identity{Email: "user@example.com", UserID: uuid.New()}
	e, _ := newTestServer(t, identity)

	rec := doJSON(e, http.MethodPost, "/api/users/updateProfile",
		`{"username":"newname","email":"user@example.com"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "The username, institution, icon_url, email and password are required")
}

func TestAccountHandler_UpdateProfile_Success(t *testing.T) {
	identity := usecase.Identity{Email: "user@example.com", UserID: uuid.New()}
	e, uc := newTestServer(t, identity)

	uc.EXPECT().
		UpdateProfile(mock.Anything, identity, mock.AnythingOfType("*usecase.UpdateProfileInput")).
		Return(&entity.User{
			ID:          identity.UserID,
			Email:       "new@example.com",
			Username:    "newname",
			Institution: "Sea Shepherd",
			IconURL:     "https://cdn.example.com/icon.png",
			UpdatedAt:   time.Now(),
		}, nil)

	rec := doJSON(e, http.MethodPost, "/api/users/updateProfile",
		`{"username":"newname","institution":"Sea Shepherd","icon_url":"https://cdn.example.com/icon.png","email":"new@example.com","password":"secret"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "User profile updated successfully")
	assert.Contains(t, rec.Body.String(), `"updated_at"`)
}

func TestAccountHandler_UpdateBottles_ZeroRejected(t *testing.T) {
	identity := usecase.Identity{Email: "user@example.com", UserID: uuid.New()}
	e, _ := newTestServer(t, identity)

	rec := doJSON(e, http.MethodPost, "/api/users/updateBottles", `{"bottles":0}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "The bottles are required")
}

func TestAccountHandler_UpdateBottles_Success(t *testing.T) {
	identity := usecase.Identity{Email: "user@example.com", UserID: uuid.New()}
	e, uc := newTestServer(t, identity)

	uc.EXPECT().UpdateBottles(mock.Anything, identity, 5).Return(&entity.User{
		ID:     identity.UserID,
		Email:  identity.Email,
		Totals: &entity.UserTotals{TotalBottles: 17, TotalPoints: 17},
	}, nil)

	rec := doJSON(e, http.MethodPost, "/api/users/updateBottles", `{"bottles":5}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "User bottles updated successfully")
	assert.Contains(t, rec.Body.String(), `"total_bottles":17`)
}

func TestAccountHandler_Scoreboard_Success(t *testing.T) {
	identity := usecase.Identity{Email: "user@example.com", UserID: uuid.New()}
	e, uc := newTestServer(t, identity)

	uc.EXPECT().Scoreboard(mock.Anything).Return([]*entity.ScoreboardEntry{
		{Username: "first", IconURL: "https://cdn.example.com/1.png", TotalPoints: 120, TotalBottles: 120},
		{Username: "second", IconURL: "https://cdn.example.com/2.png", TotalPoints: 80, TotalBottles: 80},
	}, nil)

	rec := doJSON(e, http.MethodGet, "/api/users/scoreboard", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Scoreboard information")
	assert.Contains(t, rec.Body.String(), `"username":"first"`)
	assert.Contains(t, rec.Body.String(), `"total_points":120`)
}
