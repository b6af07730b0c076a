package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cornerstone/chores-api/internal/api/metrics"
	"github.com/cornerstone/chores-api/internal/core/domain"
	"github.com/cornerstone/chores-api/internal/core/ports"
)

type AuthHandler struct {
	authService  ports.AuthService
	tokenService ports.TokenService
	seedFile     string
}

func NewAuthHandler(authService ports.AuthService, tokenService ports.TokenService, seedFile string) *AuthHandler {
	return &AuthHandler{authService: authService, tokenService: tokenService, seedFile: seedFile}
}

type signupRequest struct {
	Username  string `json:"username" validate:"required"`
	Password  string `json:"password" validate:"required"`
	Email     string `json:"email" validate:"omitempty,email"`
	Role      string `json:"role" validate:"required,oneof=PARENT CHILD"`
	AvatarURL string `json:"avatar_url"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token     string       `json:"token"`
	ExpiresIn int64        `json:"expires_in"`
	User      *domain.User `json:"user"`
}

// Signup creates a new user account. The role is fixed at creation time.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "User registration details"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.Signup(c.Request().Context(), ports.SignupInput{
		Username:  req.Username,
		Password:  req.Password,
		Email:     req.Email,
		Role:      req.Role,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		return err
	}

	metrics.SignupsTotal.WithLabelValues(user.Role).Inc()
	return c.JSON(http.StatusCreated, user)
}

// Login verifies credentials and returns a signed token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.Authenticate(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		result := "failure"
		if errors.Is(err, domain.ErrTooManyAttempts) {
			result = "throttled"
		}
		metrics.LoginsTotal.WithLabelValues(result).Inc()
		return err
	}

	token, err := h.tokenService.Issue(user)
	if err != nil {
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{
		Token:     token,
		ExpiresIn: int64(h.tokenService.ExpirationWindow().Seconds()),
		User:      user,
	})
}

// Me returns the identity resolved from the bearer token.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.User
// @Failure      401  {object}  errorResponse
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Users returns all registered users.
//
// @Summary      List users
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.User
// @Failure      401  {object}  errorResponse
// @Router       /auth/users [get]
func (h *AuthHandler) Users(c echo.Context) error {
	users, err := h.authService.Users(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// UserByID returns a single user by id.
//
// @Summary      Get user by id
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  domain.User
// @Failure      404  {object}  errorResponse
// @Router       /auth/user/{id} [get]
func (h *AuthHandler) UserByID(c echo.Context) error {
	user, err := h.authService.UserByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

type loadUsersResponse struct {
	Status string `json:"status"`
	Loaded int    `json:"loaded"`
}

// LoadUsers seeds the user store from the configured JSON file.
//
// @Summary      Bulk-load users from the seed file
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  loadUsersResponse
// @Failure      400  {object}  errorResponse
// @Router       /auth/setup/load-users [post]
func (h *AuthHandler) LoadUsers(c echo.Context) error {
	loaded, err := h.authService.LoadUsersFromFile(c.Request().Context(), h.seedFile)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, loadUsersResponse{Status: "success", Loaded: loaded})
}
