package generation

import (
	"context"

	"github.com/Johnny027-Picard/draftcraft-agent/internal/models"
)

const (
	ModelStarter = "gpt-3.5-turbo"
	ModelPremium = "gpt-4"
)

// Generator produces one proposal text blob from the three sanitized inputs.
// No streaming, no partial output; it succeeds or errors.
type Generator interface {
	Generate(ctx context.Context, clientName, jobDescription, skills, model string) (string, error)
}

// ModelForTier selects the generation model deterministically from tier.
func ModelForTier(tier string) string {
	if tier == models.TierPremium {
		return ModelPremium
	}
	return ModelStarter
}
