package services

import (
	"encoding/json"
	"errors"
	"strconv"

	"github.com/Johnny027-Picard/draftcraft-agent/internal/models"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/checkout/session"
	"github.com/stripe/stripe-go/v79/webhook"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// BillingService creates checkout sessions and applies the tier transitions
// delivered by verified webhook events.
type BillingService struct {
	db            *gorm.DB
	webhookSecret string
	priceID       string
	baseURL       string
}

func NewBillingService(db *gorm.DB, secretKey, webhookSecret, priceID, baseURL string) *BillingService {
	stripe.Key = secretKey
	return &BillingService{
		db:            db,
		webhookSecret: webhookSecret,
		priceID:       priceID,
		baseURL:       baseURL,
	}
}

// CreateCheckoutSession starts a subscription checkout for the account. The
// account id travels in the session metadata so the webhook can find it.
func (s *BillingService) CreateCheckoutSession(user *models.User) (id string, url string, err error) {
	params := &stripe.CheckoutSessionParams{
		Mode:          stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		CustomerEmail: stripe.String(user.Email),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(s.priceID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(s.baseURL + "/dashboard?upgraded=1"),
		CancelURL:  stripe.String(s.baseURL + "/pricing"),
	}
	params.AddMetadata("user_id", strconv.FormatUint(uint64(user.ID), 10))

	sess, err := session.New(params)
	if err != nil {
		return "", "", err
	}
	return sess.ID, sess.URL, nil
}

// HandleWebhook verifies the signed payload against the endpoint secret and
// applies the transition it carries. Unverifiable payloads are rejected with
// no state change.
func (s *BillingService) HandleWebhook(payload []byte, sigHeader string) error {
	event, err := webhook.ConstructEventWithOptions(
		payload,
		sigHeader,
		s.webhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true},
	)
	if err != nil {
		zap.L().Warn("stripe webhook rejected", zap.Error(err))
		return ErrWebhookSignature
	}

	audit := models.BillingEvent{
		EventID: event.ID,
		Kind:    string(event.Type),
		Payload: datatypes.JSON(event.Data.Raw),
	}
	if err := s.db.Create(&audit).Error; err != nil {
		// Duplicate event id means a replay; the transitions below are
		// idempotent, so process it anyway.
		zap.L().Warn("billing event audit insert failed", zap.String("event_id", event.ID), zap.Error(err))
	}

	switch event.Type {
	case "checkout.session.completed":
		return s.applyPremiumUpgrade(event.Data.Raw)
	case "customer.subscription.deleted":
		return s.applyDowngrade(event.Data.Raw)
	default:
		// Intentionally ignore unhandled events.
		return nil
	}
}

func (s *BillingService) applyPremiumUpgrade(raw json.RawMessage) error {
	var sess stripe.CheckoutSession
	if err := json.Unmarshal(raw, &sess); err != nil {
		return err
	}

	userIDStr := sess.Metadata["user_id"]
	userID, err := strconv.ParseUint(userIDStr, 10, 64)
	if err != nil {
		return errors.New("checkout session missing account id")
	}

	var user models.User
	if err := s.db.First(&user, uint(userID)).Error; err != nil {
		return err
	}

	updates := map[string]interface{}{
		"is_premium":          true,
		"subscription_status": "active",
	}
	if sess.Customer != nil && sess.Customer.ID != "" {
		updates["stripe_customer_id"] = sess.Customer.ID
	}
	if sess.Subscription != nil && sess.Subscription.ID != "" {
		updates["subscription_id"] = sess.Subscription.ID
	}

	if err := s.db.Model(&user).Updates(updates).Error; err != nil {
		return err
	}

	zap.L().Info("account upgraded to premium", zap.Uint("user_id", user.ID))
	return nil
}

func (s *BillingService) applyDowngrade(raw json.RawMessage) error {
	var sub stripe.Subscription
	if err := json.Unmarshal(raw, &sub); err != nil {
		return err
	}
	if sub.Customer == nil || sub.Customer.ID == "" {
		return errors.New("subscription event missing customer id")
	}

	var user models.User
	err := s.db.Where("stripe_customer_id = ?", sub.Customer.ID).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			zap.L().Warn("subscription deleted for unknown customer", zap.String("customer", sub.Customer.ID))
			return nil
		}
		return err
	}

	if err := s.db.Model(&user).Updates(map[string]interface{}{
		"is_premium":          false,
		"subscription_status": "canceled",
	}).Error; err != nil {
		return err
	}

	zap.L().Info("account downgraded", zap.Uint("user_id", user.ID))
	return nil
}
