package user

import "time"

// UserResponse is the dashboard view of the authenticated account.
type UserResponse struct {
	ID                 uint       `json:"id"`
	Email              string     `json:"email"`
	IsVerified         bool       `json:"is_verified"`
	IsPremium          bool       `json:"is_premium"`
	SubscriptionStatus string     `json:"subscription_status"`
	LastLogin          *time.Time `json:"last_login,omitempty"`
	Usage              UsageInfo  `json:"usage"`
}

// UsageInfo reports the current monthly window.
type UsageInfo struct {
	Used            int     `json:"used"`
	Limit           int     `json:"limit"`
	UsagePercentage float64 `json:"usage_percentage"`
}
