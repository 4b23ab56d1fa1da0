package main

import (
	"os"

	"github.com/voicedesk/scheduler/internal/api"
	"github.com/voicedesk/scheduler/pkg/logger"
	"github.com/voicedesk/scheduler/pkg/utils"
)

// Start the API server
func main() {
	// Find env file
	envFile := ".env"
	if os.Getenv("ENV_FILE") != "" {
		envFile = os.Getenv("ENV_FILE")
	}

	// Load global config
	cfg := utils.NewConfigFromEnv(envFile)

	log := logger.New(cfg.GetWithDefault("ENV", "development"))
	defer log.Sync()

	// Start
	api.Start(cfg, log)
}
