package proposal

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Johnny027-Picard/draftcraft-agent/internal/models"
	"github.com/Johnny027-Picard/draftcraft-agent/internal/services"
	"github.com/Johnny027-Picard/draftcraft-agent/internal/utils"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	proposals *services.ProposalService
}

func NewHandler(proposals *services.ProposalService) *Handler {
	return &Handler{proposals: proposals}
}

// Generate godoc
// @Summary Generate a proposal
// @Description Run the issuance workflow for the authenticated account
// @Tags proposals
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Router /proposals [post]
func (h *Handler) Generate(c *gin.Context) {
	var input GenerateInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	user := c.MustGet("user").(models.User)

	p, err := h.proposals.Issue(c.Request.Context(), user.ID, services.IssueInput{
		ClientName:     input.ClientName,
		JobDescription: input.JobDescription,
		Skills:         input.Skills,
		Tier:           input.Tier,
	})
	if err != nil {
		var vErr *services.ValidationError
		var qErr *services.QuotaError
		switch {
		case errors.As(err, &vErr):
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, vErr.Message))
		case errors.Is(err, services.ErrSuspiciousInput):
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid input detected"))
		case errors.As(err, &qErr):
			c.JSON(http.StatusForbidden, utils.NewErrorResponse(http.StatusForbidden, qErr.Reason))
		case errors.Is(err, services.ErrGenerationFailed):
			c.JSON(http.StatusBadGateway, utils.NewErrorResponse(http.StatusBadGateway, "An error occurred while generating your proposal. Please try again."))
		default:
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "An error occurred while generating your proposal. Please try again."))
		}
		return
	}

	c.JSON(http.StatusCreated, utils.NewSuccessResponse("Proposal generated", toResponse(p)))
}

// List godoc
// @Summary List the account's proposals
// @Tags proposals
// @Produce  json
// @Security ApiKeyAuth
// @Router /proposals [get]
func (h *Handler) List(c *gin.Context) {
	user := c.MustGet("user").(models.User)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "10"))
	if perPage < 1 {
		perPage = 10
	}
	if perPage > 50 {
		perPage = 50
	}

	proposals, total, err := h.proposals.List(user.ID, page, perPage)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to list proposals"))
		return
	}

	items := make([]ProposalResponse, 0, len(proposals))
	for i := range proposals {
		items = append(items, toResponse(&proposals[i]))
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("OK", ListResponse{
		Proposals:   items,
		Total:       total,
		CurrentPage: page,
	}))
}

// Get godoc
// @Summary Fetch one proposal
// @Tags proposals
// @Produce  json
// @Security ApiKeyAuth
// @Router /proposals/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	user := c.MustGet("user").(models.User)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid proposal id"))
		return
	}

	p, err := h.proposals.GetByID(user.ID, uint(id))
	if err != nil {
		if errors.Is(err, services.ErrProposalNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Proposal not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch proposal"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("OK", toResponse(p)))
}

// ToggleFavorite godoc
// @Summary Toggle the favorite flag on a proposal
// @Tags proposals
// @Produce  json
// @Security ApiKeyAuth
// @Router /proposals/{id}/favorite [post]
func (h *Handler) ToggleFavorite(c *gin.Context) {
	user := c.MustGet("user").(models.User)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid proposal id"))
		return
	}

	p, err := h.proposals.ToggleFavorite(user.ID, uint(id))
	if err != nil {
		if errors.Is(err, services.ErrProposalNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Proposal not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to update proposal"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("OK", toResponse(p)))
}
