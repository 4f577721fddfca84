package auth

type RegisterInput struct {
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SessionResponse carries the account summary plus its session token.
type SessionResponse struct {
	ID         uint   `json:"id"`
	Email      string `json:"email"`
	IsVerified bool   `json:"is_verified"`
	IsPremium  bool   `json:"is_premium"`
	Token      string `json:"token,omitempty"`
}
