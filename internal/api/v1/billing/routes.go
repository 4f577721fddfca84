package billing

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the billing endpoints. The webhook stays outside the
// auth group; the provider signs its own requests.
func RegisterRoutes(router *gin.RouterGroup, h *Handler, authRequired gin.HandlerFunc) {
	b := router.Group("/billing")
	b.POST("/checkout-session", authRequired, h.CreateCheckoutSession)
	b.POST("/stripe/webhook", h.Webhook)
}
