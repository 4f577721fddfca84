package proposal

import (
	"time"

	"github.com/Johnny027-Picard/draftcraft-agent/internal/models"
)

type GenerateInput struct {
	ClientName     string `json:"client_name" binding:"required"`
	JobDescription string `json:"job_description" binding:"required"`
	Skills         string `json:"skills" binding:"required"`
	Tier           string `json:"tier"`
}

type ProposalResponse struct {
	ID         uint      `json:"id"`
	ClientName string    `json:"client_name"`
	Content    string    `json:"content"`
	ModelUsed  string    `json:"model_used"`
	Tier       string    `json:"tier"`
	IsFavorite bool      `json:"is_favorite"`
	CreatedAt  time.Time `json:"created_at"`
}

type ListResponse struct {
	Proposals   []ProposalResponse `json:"proposals"`
	Total       int64              `json:"total"`
	CurrentPage int                `json:"current_page"`
}

func toResponse(p *models.Proposal) ProposalResponse {
	return ProposalResponse{
		ID:         p.ID,
		ClientName: p.ClientName,
		Content:    p.Content,
		ModelUsed:  p.ModelUsed,
		Tier:       p.Tier,
		IsFavorite: p.IsFavorite,
		CreatedAt:  p.CreatedAt,
	}
}
