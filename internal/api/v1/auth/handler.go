package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/Johnny027-Picard/draftcraft-agent/internal/services"
	"github.com/Johnny027-Picard/draftcraft-agent/internal/utils"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	accounts *services.AccountService
	denylist *services.TokenDenylist
}

func NewHandler(accounts *services.AccountService, denylist *services.TokenDenylist) *Handler {
	return &Handler{accounts: accounts, denylist: denylist}
}

// Register godoc
// @Summary Register a new account
// @Description Create an unverified free-tier account and send the verification email
// @Tags auth
// @Accept  json
// @Produce  json
// @Router /auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var input RegisterInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	if input.Password != input.ConfirmPassword {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Passwords do not match"))
		return
	}

	u, err := h.accounts.Register(input.Email, input.Password)
	if err != nil {
		var vErr *services.ValidationError
		switch {
		case errors.As(err, &vErr):
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, vErr.Message))
		case errors.Is(err, services.ErrEmailTaken):
			c.JSON(http.StatusConflict, utils.NewErrorResponse(http.StatusConflict, err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to register account due to an internal error"))
		}
		return
	}

	c.JSON(http.StatusCreated, utils.NewSuccessResponse("Account created! Please check your email to verify your account.", SessionResponse{
		ID:         u.ID,
		Email:      u.Email,
		IsVerified: u.IsVerified,
		IsPremium:  u.IsPremium,
	}))
}

// Login godoc
// @Summary Log in
// @Tags auth
// @Accept  json
// @Produce  json
// @Router /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var input LoginInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	token, u, err := h.accounts.Login(input.Email, input.Password, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		if errors.Is(err, services.ErrAccountDeactivated) {
			c.JSON(http.StatusForbidden, utils.NewErrorResponse(http.StatusForbidden, "Account is deactivated. Please contact support."))
			return
		}
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Invalid email or password"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Logged in successfully", SessionResponse{
		ID:         u.ID,
		Email:      u.Email,
		IsVerified: u.IsVerified,
		IsPremium:  u.IsPremium,
		Token:      token,
	}))
}

// Logout godoc
// @Summary Log out
// @Description Invalidate the current session token
// @Tags auth
// @Produce  json
// @Security ApiKeyAuth
// @Router /auth/logout [post]
func (h *Handler) Logout(c *gin.Context) {
	tokenString, err := utils.ExtractToken(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, err.Error()))
		return
	}

	remaining := time.Hour * 72 // max token life
	if claims, err := utils.ValidateToken(tokenString); err == nil {
		if exp, ok := claims["exp"].(float64); ok {
			remaining = time.Until(time.Unix(int64(exp), 0))
		}
	}

	if err := h.denylist.Add(tokenString, remaining); err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to revoke token"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Logged out successfully", nil))
}
