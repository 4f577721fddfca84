package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Johnny027-Picard/draftcraft-agent/internal/generation"
	"github.com/Johnny027-Picard/draftcraft-agent/internal/models"
	"github.com/Johnny027-Picard/draftcraft-agent/internal/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IssueInput is the raw submission for one proposal.
type IssueInput struct {
	ClientName     string
	JobDescription string
	Skills         string
	Tier           string
}

// ProposalService runs the issuance workflow: sanitize, authorize against the
// ledger, generate, persist. Collaborators are injected, not process globals.
type ProposalService struct {
	db        *gorm.DB
	generator generation.Generator
}

func NewProposalService(db *gorm.DB, generator generation.Generator) *ProposalService {
	return &ProposalService{db: db, generator: generator}
}

// Issue produces and persists one proposal for the account. Every step is a
// hard gate; a failure anywhere leaves no partial record. The starter usage
// counter is incremented in the same transaction that persists the record.
func (s *ProposalService) Issue(ctx context.Context, userID uint, in IssueInput) (*models.Proposal, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, err
	}

	tier := models.TierStarter
	if in.Tier == models.TierPremium {
		tier = models.TierPremium
	}

	// Injection markers in the raw payload reject the whole request. This is
	// an audit signal, separate from sanitization.
	if suspicious, pattern := utils.ContainsSuspiciousContent(in.ClientName, in.JobDescription, in.Skills); suspicious {
		zap.L().Warn("suspicious proposal input",
			zap.Uint("user_id", user.ID),
			zap.String("pattern", pattern))
		return nil, ErrSuspiciousInput
	}

	proposal := &models.Proposal{
		UserID:         user.ID,
		ClientName:     utils.SanitizeInput(in.ClientName),
		JobDescription: utils.SanitizeInput(in.JobDescription),
		Skills:         utils.SanitizeInput(in.Skills),
		Tier:           tier,
	}
	if err := proposal.Validate(); err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}

	// The gate normalizes the usage window as a side effect; a rollover is
	// persisted even when the request is ultimately denied.
	if user.ResetMonthlyUsage() {
		if err := s.persistWindow(&user); err != nil {
			return nil, err
		}
	}
	if allowed, reason := user.CanGenerateProposal(tier); !allowed {
		return nil, &QuotaError{Reason: reason}
	}

	model := generation.ModelForTier(tier)
	content, err := s.generator.Generate(ctx, proposal.ClientName, proposal.JobDescription, proposal.Skills, model)
	if err != nil {
		zap.L().Error("generation failed",
			zap.Uint("user_id", user.ID),
			zap.String("model", model),
			zap.Error(err))
		return nil, ErrGenerationFailed
	}

	proposal.Content = content
	proposal.ModelUsed = model

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(proposal).Error; err != nil {
			return err
		}
		if tier == models.TierStarter {
			return tx.Model(&models.User{}).Where("id = ?", user.ID).
				Update("proposals_this_month", gorm.Expr("proposals_this_month + 1")).Error
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("persist proposal: %w", err)
	}

	zap.L().Info("proposal generated",
		zap.Uint("user_id", user.ID),
		zap.Uint("proposal_id", proposal.ID),
		zap.String("model", model),
		zap.String("tier", tier))

	return proposal, nil
}

// persistWindow stores a usage-window rollover.
func (s *ProposalService) persistWindow(user *models.User) error {
	return s.db.Model(user).Updates(map[string]interface{}{
		"proposals_this_month": user.ProposalsThisMonth,
		"last_reset":           user.LastReset,
	}).Error
}

// List returns the account's proposals, newest first.
func (s *ProposalService) List(userID uint, page, perPage int) ([]models.Proposal, int64, error) {
	var proposals []models.Proposal
	var total int64

	query := s.db.Model(&models.Proposal{}).Where("user_id = ?", userID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * perPage
	if err := query.Order("created_at desc").Offset(offset).Limit(perPage).Find(&proposals).Error; err != nil {
		return nil, 0, err
	}

	return proposals, total, nil
}

// GetByID loads one proposal, scoped to its owner.
func (s *ProposalService) GetByID(userID, proposalID uint) (*models.Proposal, error) {
	var proposal models.Proposal
	err := s.db.Where("id = ? AND user_id = ?", proposalID, userID).First(&proposal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProposalNotFound
		}
		return nil, err
	}
	return &proposal, nil
}

// ToggleFavorite flips the favorite flag on an owned proposal.
func (s *ProposalService) ToggleFavorite(userID, proposalID uint) (*models.Proposal, error) {
	proposal, err := s.GetByID(userID, proposalID)
	if err != nil {
		return nil, err
	}

	proposal.IsFavorite = !proposal.IsFavorite
	if err := s.db.Model(proposal).Update("is_favorite", proposal.IsFavorite).Error; err != nil {
		return nil, err
	}
	return proposal, nil
}
