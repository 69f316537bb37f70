package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rinilkunhiraman/portfolio-2026/api"
	"github.com/rinilkunhiraman/portfolio-2026/config"
	"github.com/rinilkunhiraman/portfolio-2026/content"
	"github.com/rinilkunhiraman/portfolio-2026/render"
	"github.com/rinilkunhiraman/portfolio-2026/seo"
	"github.com/rinilkunhiraman/portfolio-2026/services"
)

func main() {
	log.Info().Msg("Initializing app...")

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Warn().Msgf("Error loading .env file: %v", err)
	}

	c := config.New()

	if config.GetBool(c, "LOG_PRETTY", false) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	projectID := config.GetString(c, "CONTENT_PROJECT_ID", "")
	dataset := config.GetString(c, "CONTENT_DATASET", "")
	if projectID == "" || dataset == "" {
		log.Fatal().Msg("CONTENT_PROJECT_ID and CONTENT_DATASET must be set")
	}

	client := content.NewClient(content.Config{
		ProjectID:  projectID,
		Dataset:    dataset,
		APIVersion: config.GetString(c, "CONTENT_API_VERSION", ""),
		Token:      config.GetString(c, "CONTENT_TOKEN", ""),
	})

	store := content.NewStore(client)
	images := content.NewImageBuilder(projectID, dataset)

	renderer, err := render.New(images)
	if err != nil {
		log.Fatal().Msgf("Error compiling templates: %v", err)
	}

	meta := seo.NewBuilder(config.GetString(c, "SITE_URL", ""), images)

	relay := services.NewRelay(
		config.GetString(c, "RELAY_URL", ""),
		config.GetString(c, "RELAY_ACCESS_KEY", ""),
	)

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(c, store, renderer, relay, meta)
	if err != nil {
		log.Fatal().Msgf("Error initializing server: %v", err)
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	log.Error().Msgf("Closing server: %v", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
