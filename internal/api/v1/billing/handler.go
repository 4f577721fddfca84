package billing

import (
	"errors"
	"io"
	"net/http"

	"github.com/Johnny027-Picard/draftcraft-agent/internal/models"
	"github.com/Johnny027-Picard/draftcraft-agent/internal/services"
	"github.com/Johnny027-Picard/draftcraft-agent/internal/utils"
	"github.com/gin-gonic/gin"
)

// Webhook bodies above this size are rejected unread.
const maxWebhookBodyBytes = int64(65536)

type Handler struct {
	billing *services.BillingService
}

func NewHandler(billing *services.BillingService) *Handler {
	return &Handler{billing: billing}
}

// CreateCheckoutSession godoc
// @Summary Start a premium subscription checkout
// @Tags billing
// @Produce  json
// @Security ApiKeyAuth
// @Router /billing/checkout-session [post]
func (h *Handler) CreateCheckoutSession(c *gin.Context) {
	user := c.MustGet("user").(models.User)

	id, url, err := h.billing.CreateCheckoutSession(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Payment session creation failed"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("OK", CheckoutResponse{ID: id, URL: url}))
}

// Webhook godoc
// @Summary Payment provider webhook
// @Description Verifies the event signature and applies tier transitions
// @Tags billing
// @Accept  json
// @Produce  json
// @Router /billing/stripe/webhook [post]
func (h *Handler) Webhook(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBodyBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid payload"))
		return
	}

	err = h.billing.HandleWebhook(body, c.GetHeader("Stripe-Signature"))
	if err != nil {
		if errors.Is(err, services.ErrWebhookSignature) {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Signature verification failed"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to process event"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("OK", nil))
}
