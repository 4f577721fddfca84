package user

import (
	"net/http"

	"github.com/Johnny027-Picard/draftcraft-agent/internal/models"
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

// Me godoc
// @Summary Current account with usage statistics
// @Description Reading usage normalizes the monthly window, so a stale
// counter is zeroed here exactly as it is on issuance.
// @Tags user
// @Produce  json
// @Security ApiKeyAuth
// @Router /me [get]
func (h *Handler) Me(c *gin.Context) {
	u := c.MustGet("user").(models.User)

	used, isPremium, percentage, err := h.accounts.UsageStats(u.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to load usage"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("OK", UserResponse{
		ID:                 u.ID,
		Email:              u.Email,
		IsVerified:         u.IsVerified,
		IsPremium:          isPremium,
		SubscriptionStatus: u.SubscriptionStatus,
		LastLogin:          u.LastLogin,
		Usage: UsageInfo{
			Used:            used,
			Limit:           models.StarterMonthlyLimit,
			UsagePercentage: percentage,
		},
	}))
}
