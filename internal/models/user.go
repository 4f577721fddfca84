package models

import (
	"fmt"
	"time"
)

const (
	TierStarter = "starter"
	TierPremium = "premium"

	// StarterMonthlyLimit is the number of proposals a free account may
	// generate per calendar month. Premium usage is not metered here.
	StarterMonthlyLimit = 5
)

// User is the account ledger: identity, verification state, subscription
// tier and the rolling monthly usage counter.
type User struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Email        string `gorm:"size:120;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:128;not null"`

	IsVerified        bool    `gorm:"default:false"`
	VerificationToken *string `gorm:"size:100;uniqueIndex"`

	ResetToken        *string `gorm:"size:100;uniqueIndex"`
	ResetTokenExpires *time.Time

	IsPremium          bool      `gorm:"default:false"`
	ProposalsThisMonth int       `gorm:"default:0"`
	LastReset          time.Time `gorm:"not null"`

	LastLogin *time.Time
	IsActive  bool `gorm:"default:true"`

	StripeCustomerID   *string `gorm:"size:100;uniqueIndex"`
	SubscriptionID     *string `gorm:"size:100;uniqueIndex"`
	SubscriptionStatus string  `gorm:"size:20;default:'inactive'"`

	Proposals []Proposal `gorm:"constraint:OnDelete:CASCADE"`
}

// NewUser returns an unverified free-tier account with a fresh usage window.
func NewUser(email, passwordHash string) *User {
	return &User{
		Email:              email,
		PasswordHash:       passwordHash,
		IsActive:           true,
		LastReset:          time.Now().UTC(),
		SubscriptionStatus: "inactive",
	}
}

// ResetMonthlyUsage zeroes the usage counter when the stored window is from a
// different calendar month than now. Idempotent within a month; reports
// whether a rollover happened so callers can persist it.
func (u *User) ResetMonthlyUsage() bool {
	now := time.Now().UTC()
	if u.LastReset.Month() != now.Month() || u.LastReset.Year() != now.Year() {
		u.ProposalsThisMonth = 0
		u.LastReset = now
		return true
	}
	return false
}

// CanGenerateProposal is the quota gate. It normalizes the usage window as a
// side effect, then decides from tier flag and counter alone.
func (u *User) CanGenerateProposal(tier string) (bool, string) {
	u.ResetMonthlyUsage()

	if tier == TierPremium && !u.IsPremium {
		return false, "Premium tier requires premium subscription"
	}

	if tier == TierStarter && u.ProposalsThisMonth >= StarterMonthlyLimit {
		return false, fmt.Sprintf("Monthly limit of %d proposals reached", StarterMonthlyLimit)
	}

	return true, "OK"
}

// IsResetTokenValid reports whether the stored reset token may still be
// redeemed. Presence plus an unexpired timestamp is the validity signal.
func (u *User) IsResetTokenValid() bool {
	if u.ResetToken == nil || u.ResetTokenExpires == nil {
		return false
	}
	return time.Now().UTC().Before(*u.ResetTokenExpires)
}
