package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/vasavi-eco-club/club-site-backend/api"
	"github.com/vasavi-eco-club/club-site-backend/auth"
	"github.com/vasavi-eco-club/club-site-backend/config"
	"github.com/vasavi-eco-club/club-site-backend/database"
	"github.com/vasavi-eco-club/club-site-backend/models"
)

func main() {
	log.Info().Msg("Initializing app...")

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Warn().Msgf("Error loading .env file: %v", err)
	}

	c := config.New()

	uploadDir := config.GetString(c, "UPLOAD_DIR", "uploads")
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		log.Error().Msgf("Error creating upload directory: %v", err)
		os.Exit(1)
	}

	db := database.New()
	if err := seed(db, c); err != nil {
		log.Error().Msgf("Error seeding store: %v", err)
		os.Exit(1)
	}

	// Never closed: the goroutine that lost the race to report the fatal
	// error may still send during shutdown.
	errChannel := make(chan error)

	server, err := api.NewServer(db)
	if err != nil {
		log.Error().Msgf("Error initializing server: %v", err)
		os.Exit(1)
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	log.Info().Msgf("Closing server: %v", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

// seed inserts the single admin principal and the standing event the public
// site always shows. Everything else is created through the admin panel.
func seed(db database.Database, c map[string]string) error {
	hash, err := auth.HashPassword(config.GetString(c, "ADMIN_PASSWORD", "admin123"))
	if err != nil {
		return fmt.Errorf("hashing admin password: %w", err)
	}

	admin := db.AdminUserRepo().Add(
		config.GetString(c, "ADMIN_USERNAME", "admin"),
		hash,
		config.GetString(c, "ADMIN_EMAIL", "admin@ecoclub.edu"),
	)
	log.Info().Str("username", admin.Username).Msg("Seeded admin user")

	formURL := "https://docs.google.com/forms/d/e/1FAIpQLSeZ0nN0Arxg4vSHN1L9OO3Co7Iw9TFwVhlY611N1tPDZydjTA/viewform?usp=publish-editor"
	db.EventRepo().Add(models.InsertEvent{
		Title:    "Ongoing Energy Challenge",
		Date:     "Ongoing",
		Location: "Nationwide",
		Description: "Join our ongoing energy conservation challenge! Participate in activities " +
			"to reduce energy consumption and make a positive environmental impact.",
		Category:                "Challenge",
		ExternalRegistrationURL: &formURL,
		Status:                  "ongoing",
	})

	return nil
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to
// the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
