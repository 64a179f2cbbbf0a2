package main

import (
	"fmt"
	"log"
	"os"

	"github.com/copysmith/backend/config"
	httpDelivery "github.com/copysmith/backend/internal/delivery/http"
	"github.com/copysmith/backend/internal/infrastructure/inflight"
	"github.com/copysmith/backend/internal/infrastructure/llm"
	"github.com/copysmith/backend/internal/usecase"
)

func main() {
	// Load configuration; a missing API key stops the server here
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting Copysmith v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	// Initialize infrastructure dependencies
	llmClient := llm.NewClient(cfg.LLM.APIKey, cfg.LLM.BaseURL, cfg.LLM.Model, cfg.LLM.Timeout)

	// Enable debug mode in development environment
	if cfg.Server.Environment == "development" {
		llmClient.SetDebug(true)
		log.Printf("LLM client debug mode enabled")
	}

	log.Printf("LLM API configured: %s model=%s (key: %s)", cfg.LLM.BaseURL, cfg.LLM.Model, cfg.LLM.MaskedAPIKey())
	log.Printf("Evaluation format: %s, temperature: %.2f, timeout: %s",
		cfg.LLM.EvaluationFormat, cfg.LLM.Temperature, cfg.LLM.Timeout)

	guard := inflight.NewGuard(cfg.Submission.GuardTTL)
	defer guard.Close()

	// Initialize usecase layer
	temperature := cfg.LLM.Temperature
	copyService := usecase.NewCopyService(
		llmClient,
		usecase.CopyServiceConfig{
			Temperature:        &temperature,
			EvaluationFormat:   cfg.LLM.EvaluationFormat,
			EnableDebugLogging: cfg.Server.Environment == "development",
		},
	)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(copyService, guard)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
