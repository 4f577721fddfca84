package models

import (
	"time"

	"gorm.io/datatypes"
)

// BillingEvent is an audit row for every verified webhook event received from
// the payment provider. EventID is the provider's id, so replays are visible.
type BillingEvent struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time

	EventID string         `gorm:"size:100;uniqueIndex;not null"`
	Kind    string         `gorm:"size:100;not null"`
	Payload datatypes.JSON `gorm:"type:jsonb"`
}
