package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Johnny027-Picard/draftcraft-agent/internal/mailer"
	"github.com/Johnny027-Picard/draftcraft-agent/internal/models"
	"github.com/Johnny027-Picard/draftcraft-agent/internal/utils"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const resetTokenTTL = time.Hour

// AccountService owns registration, login and the token-based lifecycle
// flows (email verification, password reset).
type AccountService struct {
	db       *gorm.DB
	notifier Notifier
	baseURL  string
}

func NewAccountService(db *gorm.DB, notifier Notifier, baseURL string) *AccountService {
	return &AccountService{db: db, notifier: notifier, baseURL: strings.TrimRight(baseURL, "/")}
}

// Register creates an unverified free-tier account and queues the
// verification and welcome mails. Queue failures are logged, never returned.
func (s *AccountService) Register(email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if !utils.ValidateEmail(email) {
		return nil, &ValidationError{Message: "Please enter a valid email address"}
	}
	if ok, msg := utils.ValidatePassword(password); !ok {
		return nil, &ValidationError{Message: msg}
	}

	var existing models.User
	result := s.db.Where("email = ?", email).First(&existing)
	if result.Error == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, result.Error
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	verifyToken, err := utils.GenerateSecureToken()
	if err != nil {
		return nil, err
	}

	user := models.NewUser(email, string(hashed))
	user.VerificationToken = &verifyToken

	if err := s.db.Create(user).Error; err != nil {
		return nil, err
	}

	s.enqueue(mailer.KindVerifyEmail, user.Email, map[string]string{
		"VerifyURL": fmt.Sprintf("%s/api/v1/account/verify-email/%s", s.baseURL, verifyToken),
	})
	s.enqueue(mailer.KindWelcome, user.Email, map[string]string{
		"PricingURL": s.baseURL + "/pricing",
	})

	return user, nil
}

// Login checks credentials, stamps last_login, records the login and issues
// a session token.
func (s *AccountService) Login(email, password, ipAddress, userAgent string) (string, *models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		return "", nil, ErrAccountDeactivated
	}

	now := time.Now().UTC()
	user.LastLogin = &now
	if err := s.db.Model(&user).Update("last_login", now).Error; err != nil {
		return "", nil, err
	}
	s.db.Create(&models.LoginHistory{
		UserID:    user.ID,
		Timestamp: now,
		IPAddress: ipAddress,
		UserAgent: userAgent,
	})

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		return "", nil, err
	}

	return token, &user, nil
}

// VerifyEmail redeems a verification token. Single use: redemption clears the
// token, so a replay is indistinguishable from a token that never existed.
func (s *AccountService) VerifyEmail(token string) error {
	if token == "" {
		return ErrTokenNotFound
	}

	var user models.User
	if err := s.db.Where("verification_token = ?", token).First(&user).Error; err != nil {
		return ErrTokenNotFound
	}

	return s.db.Model(&user).Updates(map[string]interface{}{
		"is_verified":        true,
		"verification_token": nil,
	}).Error
}

// RequestPasswordReset issues a time-boxed reset token and queues the reset
// mail. Unknown addresses are silently ignored so account existence does not
// leak.
func (s *AccountService) RequestPasswordReset(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	token, err := utils.GenerateSecureToken()
	if err != nil {
		return err
	}
	expires := time.Now().UTC().Add(resetTokenTTL)

	if err := s.db.Model(&user).Updates(map[string]interface{}{
		"reset_token":         token,
		"reset_token_expires": expires,
	}).Error; err != nil {
		return err
	}

	s.enqueue(mailer.KindPasswordReset, user.Email, map[string]string{
		"ResetURL": fmt.Sprintf("%s/reset-password/%s", s.baseURL, token),
	})

	return nil
}

// ResetPassword redeems an unexpired reset token, replacing the credential
// and clearing the token in one update.
func (s *AccountService) ResetPassword(token, password string) error {
	if token == "" {
		return ErrTokenNotFound
	}

	var user models.User
	if err := s.db.Where("reset_token = ?", token).First(&user).Error; err != nil {
		return ErrTokenNotFound
	}
	if !user.IsResetTokenValid() {
		return ErrTokenNotFound
	}

	if ok, msg := utils.ValidatePassword(password); !ok {
		return &ValidationError{Message: msg}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.db.Model(&user).Updates(map[string]interface{}{
		"password_hash":       string(hashed),
		"reset_token":         nil,
		"reset_token_expires": nil,
	}).Error
}

// FindByID loads one account.
func (s *AccountService) FindByID(userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UsageStats normalizes the usage window, persisting a rollover, and returns
// the counter for dashboard rendering. Safe to call repeatedly.
func (s *AccountService) UsageStats(userID uint) (used int, isPremium bool, percentage float64, err error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return 0, false, 0, err
	}

	if user.ResetMonthlyUsage() {
		if err := s.db.Model(&user).Updates(map[string]interface{}{
			"proposals_this_month": user.ProposalsThisMonth,
			"last_reset":           user.LastReset,
		}).Error; err != nil {
			return 0, false, 0, err
		}
	}

	if !user.IsPremium {
		percentage = float64(user.ProposalsThisMonth) / float64(models.StarterMonthlyLimit) * 100
	}

	return user.ProposalsThisMonth, user.IsPremium, percentage, nil
}

func (s *AccountService) enqueue(kind, to string, data map[string]string) {
	if err := s.notifier.Enqueue(kind, to, data); err != nil {
		zap.L().Warn("failed to enqueue notification",
			zap.String("kind", kind),
			zap.String("to", to),
			zap.Error(err))
	}
}
