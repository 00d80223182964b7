package auth

import (
	"net/http"
	"strings"

	"github.com/ShubhamJagtap-29/gamersden/config"
	"github.com/ShubhamJagtap-29/gamersden/internal/middleware"
	"github.com/ShubhamJagtap-29/gamersden/internal/roles"
	"github.com/ShubhamJagtap-29/gamersden/internal/user"
	"github.com/ShubhamJagtap-29/gamersden/pkg/responses"
	"github.com/ShubhamJagtap-29/gamersden/pkg/token"
	"github.com/ShubhamJagtap-29/gamersden/utils"
	"github.com/gin-gonic/gin"
)

// AuthController handles account registration and session tokens.
type AuthController struct {
	users     user.UserRepository
	appConfig *config.Config
}

// NewAuthController creates a new auth controller
func NewAuthController(users user.UserRepository, appConfig *config.Config) *AuthController {
	return &AuthController{users: users, appConfig: appConfig}
}

func (ac *AuthController) issueTokens(userID uint, primaryRole string) (TokenResponse, error) {
	access, err := token.GenerateJWT(userID, primaryRole,
		ac.appConfig.JWT.AccessTokenSecret, ac.appConfig.JWT.AccessTokenExpiryMinutes)
	if err != nil {
		return TokenResponse{}, err
	}
	refresh, err := token.GenerateJWT(userID, primaryRole,
		ac.appConfig.JWT.RefreshTokenSecret, ac.appConfig.JWT.RefreshTokenExpiryDays*24*60)
	if err != nil {
		return TokenResponse{}, err
	}
	return TokenResponse{AccessToken: access, RefreshToken: refresh}, nil
}

// Register godoc
// @Summary Register a new account
// @Description Creates a platform account. New accounts start with the USER role.
// @Tags Auth
// @Accept json
// @Produce json
// @Param account body RegisterRequest true "Registration Data"
// @Success 201 {object} responses.SuccessResponse{data=user.User} "Account created"
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Failure 409 {object} responses.ErrorResponse "Username or email taken"
// @Router /auth/register [post]
func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	if existing, _ := ac.users.GetUserByEmail(strings.ToLower(req.Email)); existing != nil {
		responses.SendError(c, http.StatusConflict, "Email already registered")
		return
	}
	if existing, _ := ac.users.GetUserByUsername(req.Username); existing != nil {
		responses.SendError(c, http.StatusConflict, "Username already taken")
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	u := user.User{
		Username: req.Username,
		Email:    strings.ToLower(req.Email),
		Password: hashed,
		IGN:      req.IGN,
		Roles:    user.StringList{roles.User},
		Role:     roles.User,
	}
	if err := ac.users.CreateUser(&u); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to create account: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Account created successfully", u)
}

// Login godoc
// @Summary Log in
// @Description Exchanges credentials for an access/refresh token pair. The identifier may be an email or a username.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login Data"
// @Success 200 {object} responses.SuccessResponse{data=TokenResponse} "Token pair"
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Failure 401 {object} responses.ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	var u *user.User
	var err error
	if strings.Contains(req.LoginIdentifier, "@") {
		u, err = ac.users.GetUserByEmail(strings.ToLower(req.LoginIdentifier))
	} else {
		u, err = ac.users.GetUserByUsername(req.LoginIdentifier)
	}
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to look up account")
		return
	}
	if u == nil || !utils.CheckPassword(u.Password, req.Password) {
		responses.SendError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	tokens, err := ac.issueTokens(u.ID, u.Role)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to issue tokens")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Logged in successfully", tokens)
}

// Refresh godoc
// @Summary Refresh the token pair
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body RefreshTokenRequest true "Refresh token"
// @Success 200 {object} responses.SuccessResponse{data=TokenResponse} "New token pair"
// @Failure 401 {object} responses.ErrorResponse "Invalid refresh token"
// @Router /auth/refresh [post]
func (ac *AuthController) Refresh(c *gin.Context) {
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	claims, err := token.ValidateJWT(req.RefreshToken, ac.appConfig.JWT.RefreshTokenSecret)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "Invalid refresh token: "+err.Error())
		return
	}

	u, err := ac.users.GetUserByID(claims.UserID)
	if err != nil || u == nil {
		responses.SendError(c, http.StatusUnauthorized, "Account no longer exists")
		return
	}

	tokens, err := ac.issueTokens(u.ID, u.Role)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to issue tokens")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Tokens refreshed", tokens)
}

// Me godoc
// @Summary Get the current account
// @Description Returns the authenticated user, including the derived role set.
// @Tags Auth
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=user.User} "Current account"
// @Failure 401 {object} responses.ErrorResponse "Unauthorized"
// @Security ApiKeyAuth
// @Router /users/me [get]
func (ac *AuthController) Me(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	u, err := ac.users.GetUserByID(userID)
	if err != nil || u == nil {
		responses.SendError(c, http.StatusNotFound, "Account not found")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Account retrieved successfully", u)
}
