package main

import (
	"github.com/ethanbaker/states/internal/api"
	"github.com/ethanbaker/states/pkg/utils"
)

// Start the API server
func main() {
	// Load global config
	cfg := utils.NewConfigFromEnv(utils.EnvFile())

	// Start
	api.Start(cfg)
}
