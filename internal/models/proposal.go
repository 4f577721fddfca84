package models

import (
	"errors"
	"strings"
	"time"
)

// MaxInputLength bounds each free-text proposal input.
const MaxInputLength = 10000

// Proposal is an append-only record of one generated proposal. Rows are never
// updated after creation except for the favorite flag.
type Proposal struct {
	ID        uint      `gorm:"primarykey"`
	CreatedAt time.Time `gorm:"index"`

	UserID uint `gorm:"index;not null"`

	Content        string `gorm:"type:text;not null"`
	ClientName     string `gorm:"size:200;not null"`
	JobDescription string `gorm:"type:text;not null"`
	Skills         string `gorm:"type:text;not null"`

	ModelUsed  string `gorm:"size:50;not null"`
	Tier       string `gorm:"size:20;not null"`
	TokensUsed int

	IsFavorite bool `gorm:"default:false"`
}

// Validate rejects empty or oversized inputs before a record is constructed.
// Violating input is never truncated.
func (p *Proposal) Validate() error {
	fields := map[string]string{
		"client name":     p.ClientName,
		"job description": p.JobDescription,
		"skills":          p.Skills,
	}
	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			return errors.New(name + " is required")
		}
		if len(value) > MaxInputLength {
			return errors.New(name + " is too long")
		}
	}
	return nil
}
