package services

import (
	"testing"
	"time"

	"github.com/Johnny027-Picard/draftcraft-agent/internal/mailer"
	"github.com/Johnny027-Picard/draftcraft-agent/internal/models"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

type fakeNotifier struct {
	sent []Notification
}

func (n *fakeNotifier) Enqueue(kind, to string, data map[string]string) error {
	n.sent = append(n.sent, Notification{Kind: kind, To: to, Data: data})
	return nil
}

func (n *fakeNotifier) kinds() []string {
	kinds := make([]string, 0, len(n.sent))
	for _, m := range n.sent {
		kinds = append(kinds, m.Kind)
	}
	return kinds
}

func TestRegister(t *testing.T) {
	db := setupTestDB(t)
	notifier := &fakeNotifier{}
	svc := NewAccountService(db, notifier, "http://localhost:8080")

	user, err := svc.Register("User@Example.com", "Str0ng!pass")
	assert.NoError(t, err)
	assert.Equal(t, "user@example.com", user.Email, "email is stored lowercased")
	assert.False(t, user.IsVerified)
	assert.False(t, user.IsPremium)
	assert.NotNil(t, user.VerificationToken)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Str0ng!pass")))

	assert.Equal(t, []string{mailer.KindVerifyEmail, mailer.KindWelcome}, notifier.kinds())
	assert.Contains(t, notifier.sent[0].Data["VerifyURL"], *user.VerificationToken)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAccountService(db, &fakeNotifier{}, "http://localhost:8080")

	_, err := svc.Register("user@example.com", "Str0ng!pass")
	assert.NoError(t, err)

	_, err = svc.Register("USER@example.com", "Str0ng!pass")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterRejectsWeakPassword(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAccountService(db, &fakeNotifier{}, "http://localhost:8080")

	_, err := svc.Register("user@example.com", "weakpass")
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Password must contain at least one uppercase letter", vErr.Message)

	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.Zero(t, count)
}

func TestRegisterRejectsInvalidEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAccountService(db, &fakeNotifier{}, "http://localhost:8080")

	_, err := svc.Register("not-an-email", "Str0ng!pass")
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Please enter a valid email address", vErr.Message)
}

func TestLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	db := setupTestDB(t)
	svc := NewAccountService(db, &fakeNotifier{}, "http://localhost:8080")

	registered, err := svc.Register("user@example.com", "Str0ng!pass")
	assert.NoError(t, err)

	token, user, err := svc.Login("user@example.com", "Str0ng!pass", "127.0.0.1", "test-agent")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, registered.ID, user.ID)
	assert.NotNil(t, user.LastLogin)

	var history models.LoginHistory
	assert.NoError(t, db.Where("user_id = ?", user.ID).First(&history).Error)
	assert.Equal(t, "127.0.0.1", history.IPAddress)
	assert.Equal(t, "test-agent", history.UserAgent)
}

func TestLoginWrongPassword(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAccountService(db, &fakeNotifier{}, "http://localhost:8080")

	_, err := svc.Register("user@example.com", "Str0ng!pass")
	assert.NoError(t, err)

	_, _, err = svc.Login("user@example.com", "wrong-password", "127.0.0.1", "test-agent")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login("unknown@example.com", "Str0ng!pass", "127.0.0.1", "test-agent")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginDeactivatedAccount(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAccountService(db, &fakeNotifier{}, "http://localhost:8080")

	user, err := svc.Register("user@example.com", "Str0ng!pass")
	assert.NoError(t, err)
	db.Model(user).Update("is_active", false)

	_, _, err = svc.Login("user@example.com", "Str0ng!pass", "127.0.0.1", "test-agent")
	assert.ErrorIs(t, err, ErrAccountDeactivated)
}

func TestVerifyEmailIsSingleUse(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAccountService(db, &fakeNotifier{}, "http://localhost:8080")

	user, err := svc.Register("user@example.com", "Str0ng!pass")
	assert.NoError(t, err)
	token := *user.VerificationToken

	assert.NoError(t, svc.VerifyEmail(token))

	var fresh models.User
	db.First(&fresh, user.ID)
	assert.True(t, fresh.IsVerified)
	assert.Nil(t, fresh.VerificationToken)

	// Replay of a redeemed token looks like a token that never existed.
	assert.ErrorIs(t, svc.VerifyEmail(token), ErrTokenNotFound)
	assert.ErrorIs(t, svc.VerifyEmail(""), ErrTokenNotFound)
	assert.ErrorIs(t, svc.VerifyEmail("bogus"), ErrTokenNotFound)
}

func TestRequestPasswordReset(t *testing.T) {
	db := setupTestDB(t)
	notifier := &fakeNotifier{}
	svc := NewAccountService(db, notifier, "http://localhost:8080")

	user, err := svc.Register("user@example.com", "Str0ng!pass")
	assert.NoError(t, err)
	notifier.sent = nil

	assert.NoError(t, svc.RequestPasswordReset("user@example.com"))

	var fresh models.User
	db.First(&fresh, user.ID)
	assert.NotNil(t, fresh.ResetToken)
	assert.NotNil(t, fresh.ResetTokenExpires)
	assert.WithinDuration(t, time.Now().UTC().Add(time.Hour), *fresh.ResetTokenExpires, time.Minute)

	assert.Equal(t, []string{mailer.KindPasswordReset}, notifier.kinds())
	assert.Contains(t, notifier.sent[0].Data["ResetURL"], *fresh.ResetToken)
}

func TestRequestPasswordResetUnknownEmailIsSilent(t *testing.T) {
	db := setupTestDB(t)
	notifier := &fakeNotifier{}
	svc := NewAccountService(db, notifier, "http://localhost:8080")

	assert.NoError(t, svc.RequestPasswordReset("nobody@example.com"))
	assert.Empty(t, notifier.sent)
}

func TestResetPassword(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAccountService(db, &fakeNotifier{}, "http://localhost:8080")

	user, err := svc.Register("user@example.com", "Str0ng!pass")
	assert.NoError(t, err)
	assert.NoError(t, svc.RequestPasswordReset("user@example.com"))

	var fresh models.User
	db.First(&fresh, user.ID)
	token := *fresh.ResetToken

	assert.NoError(t, svc.ResetPassword(token, "N3w!passwd"))

	// Re-read into a new struct: GORM leaves stale pointer fields in place
	// when scanning a NULL column into an already-populated destination.
	var after models.User
	db.First(&after, user.ID)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(after.PasswordHash), []byte("N3w!passwd")))
	assert.Nil(t, after.ResetToken)
	assert.Nil(t, after.ResetTokenExpires)

	// The token is cleared on redemption.
	assert.ErrorIs(t, svc.ResetPassword(token, "An0ther!pw"), ErrTokenNotFound)
}

func TestResetPasswordExpiredToken(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAccountService(db, &fakeNotifier{}, "http://localhost:8080")

	user, err := svc.Register("user@example.com", "Str0ng!pass")
	assert.NoError(t, err)

	token := "expired-token"
	expired := time.Now().UTC().Add(-time.Minute)
	db.Model(user).Updates(map[string]interface{}{
		"reset_token":         token,
		"reset_token_expires": expired,
	})

	assert.ErrorIs(t, svc.ResetPassword(token, "N3w!passwd"), ErrTokenNotFound)
}

func TestResetPasswordRejectsWeakReplacement(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAccountService(db, &fakeNotifier{}, "http://localhost:8080")

	user, err := svc.Register("user@example.com", "Str0ng!pass")
	assert.NoError(t, err)
	assert.NoError(t, svc.RequestPasswordReset("user@example.com"))

	var fresh models.User
	db.First(&fresh, user.ID)
	token := *fresh.ResetToken

	err = svc.ResetPassword(token, "weak")
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)

	// A rejected replacement leaves the token redeemable.
	assert.NoError(t, svc.ResetPassword(token, "N3w!passwd"))
}

func TestUsageStats(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAccountService(db, &fakeNotifier{}, "http://localhost:8080")

	user := seedUser(t, db, func(u *models.User) {
		u.ProposalsThisMonth = 3
	})

	used, isPremium, percentage, err := svc.UsageStats(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, 3, used)
	assert.False(t, isPremium)
	assert.InDelta(t, 60.0, percentage, 0.01)
}

func TestUsageStatsRollsOverStaleWindow(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAccountService(db, &fakeNotifier{}, "http://localhost:8080")

	user := seedUser(t, db, func(u *models.User) {
		u.ProposalsThisMonth = 5
		u.LastReset = time.Now().UTC().AddDate(0, -1, 0)
	})

	used, _, percentage, err := svc.UsageStats(user.ID)
	assert.NoError(t, err)
	assert.Zero(t, used)
	assert.Zero(t, percentage)

	// The rollover is persisted, not just computed.
	var fresh models.User
	db.First(&fresh, user.ID)
	assert.Zero(t, fresh.ProposalsThisMonth)
	assert.Equal(t, time.Now().UTC().Month(), fresh.LastReset.UTC().Month())
}

func TestUsageStatsPremium(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAccountService(db, &fakeNotifier{}, "http://localhost:8080")

	user := seedUser(t, db, func(u *models.User) {
		u.IsPremium = true
		u.ProposalsThisMonth = 42
	})

	used, isPremium, percentage, err := svc.UsageStats(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, 42, used)
	assert.True(t, isPremium)
	assert.Zero(t, percentage)
}
