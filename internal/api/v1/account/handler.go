package account

import (
	"errors"
	"net/http"

	"github.com/Johnny027-Picard/draftcraft-agent/internal/services"
	"github.com/Johnny027-Picard/draftcraft-agent/internal/utils"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	accounts *services.AccountService
}

func NewHandler(accounts *services.AccountService) *Handler {
	return &Handler{accounts: accounts}
}

// VerifyEmail godoc
// @Summary Redeem an email verification token
// @Tags account
// @Produce  json
// @Router /account/verify-email/{token} [get]
func (h *Handler) VerifyEmail(c *gin.Context) {
	err := h.accounts.VerifyEmail(c.Param("token"))
	if err != nil {
		// Expired and never-existed tokens get the same answer.
		c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Invalid or expired verification link"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Email verified successfully!", nil))
}

// ForgotPassword godoc
// @Summary Request a password reset link
// @Tags account
// @Accept  json
// @Produce  json
// @Router /account/forgot-password [post]
func (h *Handler) ForgotPassword(c *gin.Context) {
	var input ForgotPasswordInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	if err := h.accounts.RequestPasswordReset(input.Email); err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to process request"))
		return
	}

	// Same answer whether or not the address exists.
	c.JSON(http.StatusOK, utils.NewSuccessResponse("If an account with that email exists, reset instructions have been sent.", nil))
}

// ResetPassword godoc
// @Summary Redeem a password reset token
// @Tags account
// @Accept  json
// @Produce  json
// @Router /account/reset-password/{token} [post]
func (h *Handler) ResetPassword(c *gin.Context) {
	var input ResetPasswordInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	if input.Password != input.ConfirmPassword {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Passwords do not match"))
		return
	}

	err := h.accounts.ResetPassword(c.Param("token"), input.Password)
	if err != nil {
		var vErr *services.ValidationError
		switch {
		case errors.As(err, &vErr):
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, vErr.Message))
		case errors.Is(err, services.ErrTokenNotFound):
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Invalid or expired reset link"))
		default:
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to reset password"))
		}
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Password reset successfully!", nil))
}
