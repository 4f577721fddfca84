package auth

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the auth endpoints. loginLimiter throttles login
// attempts per IP; authRequired guards logout.
func RegisterRoutes(router *gin.RouterGroup, h *Handler, loginLimiter, authRequired gin.HandlerFunc) {
	auth := router.Group("/auth")
	auth.POST("/register", h.Register)
	auth.POST("/login", loginLimiter, h.Login)
	auth.POST("/logout", authRequired, h.Logout)
}
