package api

import (
	"time"

	"github.com/Johnny027-Picard/draftcraft-agent/config"
	"github.com/Johnny027-Picard/draftcraft-agent/internal/api/v1/account"
	"github.com/Johnny027-Picard/draftcraft-agent/internal/api/v1/auth"
	"github.com/Johnny027-Picard/draftcraft-agent/internal/api/v1/billing"
	"github.com/Johnny027-Picard/draftcraft-agent/internal/api/v1/proposal"
	userRoutes "github.com/Johnny027-Picard/draftcraft-agent/internal/api/v1/user"
	"github.com/Johnny027-Picard/draftcraft-agent/internal/database"
	"github.com/Johnny027-Picard/draftcraft-agent/internal/generation"
	"github.com/Johnny027-Picard/draftcraft-agent/internal/middleware"
	"github.com/Johnny027-Picard/draftcraft-agent/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter() (*gin.Engine, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	db, err := database.Connect(cfg.DSN())
	if err != nil {
		return nil, err
	}

	err = database.ConnectRedis(cfg)
	if err != nil {
		return nil, err
	}

	notifier := services.NewRedisNotifier(database.RedisClient)
	denylist := services.NewTokenDenylist(database.RedisClient)
	accounts := services.NewAccountService(db, notifier, cfg.AppBaseURL)
	proposals := services.NewProposalService(db, generation.NewOpenAIGenerator(cfg.OpenAIAPIKey))
	billingSvc := services.NewBillingService(db, cfg.StripeSecretKey, cfg.StripeWebhookSecret, cfg.StripePremiumPrice, cfg.AppBaseURL)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.SecurityHeaders())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:8080"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "Stripe-Signature"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	authRequired := middleware.AuthMiddleware(accounts, denylist)
	loginLimiter := middleware.RateLimit(database.RedisClient, 5, time.Minute)

	// API v1
	v1 := router.Group("/api/v1")
	{
		auth.RegisterRoutes(v1, auth.NewHandler(accounts, denylist), loginLimiter, authRequired)
		account.RegisterRoutes(v1, account.NewHandler(accounts))
		billing.RegisterRoutes(v1, billing.NewHandler(billingSvc), authRequired)

		authorized := v1.Group("/")
		authorized.Use(authRequired)
		{
			userRoutes.RegisterRoutes(authorized, userRoutes.NewHandler(accounts))
			proposal.RegisterRoutes(authorized, proposal.NewHandler(proposals))
		}
	}

	return router, nil
}
