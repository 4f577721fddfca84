package proposal

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, h *Handler) {
	proposals := router.Group("/proposals")
	proposals.POST("", h.Generate)
	proposals.GET("", h.List)
	proposals.GET("/:id", h.Get)
	proposals.POST("/:id/favorite", h.ToggleFavorite)
}
