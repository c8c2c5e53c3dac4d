package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"marketplace/internal/auth"
	"marketplace/internal/config"
	"marketplace/internal/database"
	"marketplace/internal/logger"
	"marketplace/internal/server"
	"marketplace/internal/services"
	"marketplace/pkg/rabbitmq"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(cfg.LogLevel, cfg.AppEnv)

	app, cleanup, err := newApp(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize application")
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info().Str("addr", cfg.AppPort).Msg("starting server")
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	<-quit
	log.Info().Msg("shutting down server")
	if err := app.Shutdown(); err != nil {
		log.Error().Err(err).Msg("error during Fiber shutdown")
	}
	cleanup()
	log.Info().Msg("server gracefully stopped")
}

// newApp opens the store, creates the schema, connects the optional event
// publisher and assembles the Fiber app. cleanup releases what was opened.
func newApp(cfg *config.Config, log zerolog.Logger) (*fiber.App, func(), error) {
	db, err := database.Open(cfg, log)
	if err != nil {
		return nil, nil, err
	}
	if err := database.Migrate(db); err != nil {
		database.Close(db)
		return nil, nil, err
	}

	var publisher services.EventPublisher
	var mqClient *rabbitmq.Client
	if cfg.EventsEnabled() {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL, Queue: cfg.RabbitMQQueue}, log)
		if err != nil {
			database.Close(db)
			return nil, nil, err
		}
		publisher = mqClient
	} else {
		log.Info().Msg("RABBITMQ_URL not set, domain events disabled")
	}

	app := server.New(server.Deps{
		DB:        db,
		Hasher:    auth.NewPasswordHasher(cfg.BcryptCost),
		Publisher: publisher,
		Log:       log,
	})

	cleanup := func() {
		if mqClient != nil {
			if err := mqClient.Close(); err != nil {
				log.Error().Err(err).Msg("error closing RabbitMQ client")
			}
		}
		if err := database.Close(db); err != nil {
			log.Error().Err(err).Msg("error closing database")
		}
	}
	return app, cleanup, nil
}
