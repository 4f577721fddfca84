package account

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, h *Handler) {
	account := router.Group("/account")
	account.GET("/verify-email/:token", h.VerifyEmail)
	account.POST("/forgot-password", h.ForgotPassword)
	account.POST("/reset-password/:token", h.ResetPassword)
}
