package models

import "time"

// LoginHistory records one successful login per row.
type LoginHistory struct {
	ID        uint      `gorm:"primarykey"`
	UserID    uint      `gorm:"index;not null"`
	Timestamp time.Time `gorm:"index;not null"`
	IPAddress string    `gorm:"size:45"`
	UserAgent string    `gorm:"size:256"`
}
