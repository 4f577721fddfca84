package main

import (
	"context"
	"log"

	"github.com/Johnny027-Picard/draftcraft-agent/config"
	"github.com/Johnny027-Picard/draftcraft-agent/internal/api"
	"github.com/Johnny027-Picard/draftcraft-agent/internal/database"
	"github.com/Johnny027-Picard/draftcraft-agent/internal/mailer"
	"github.com/Johnny027-Picard/draftcraft-agent/internal/models"
	"github.com/Johnny027-Picard/draftcraft-agent/internal/services"
	"github.com/Johnny027-Picard/draftcraft-agent/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	err = logger.InitLogger(&logger.Config{
		Level:      cfg.LogLevel,
		Filename:   cfg.LogFilename,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
		Compress:   cfg.LogCompress,
	})
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	router, err := api.NewRouter()
	if err != nil {
		log.Fatalf("failed to create router: %v", err)
	}

	// Migrate the schema
	err = database.DB.AutoMigrate(
		&models.User{},
		&models.Proposal{},
		&models.LoginHistory{},
		&models.BillingEvent{},
	)
	if err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	// Notification delivery runs decoupled from request handling.
	smtpMailer := mailer.NewSMTPMailer(
		cfg.SMTPAddr(),
		cfg.SMTPHost,
		cfg.SMTPUsername,
		cfg.SMTPPassword,
		cfg.MailFrom,
		cfg.MailFromName,
	)
	worker := services.NewMailWorker(database.RedisClient, smtpMailer)
	go worker.Start(context.Background())

	if err := router.Run(":8080"); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
