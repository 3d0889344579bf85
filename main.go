package main

import (
	"fmt"

	"github.com/sheikhrachel/lifeless/utils"
)

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig("config.json")
	if err != nil {
		fmt.Println("Using default configuration (config.json not found)")
		config = utils.DefaultConfig()
	}

	if config.Headless {
		runHeadless(config)
		return
	}

	runInteractive(config)
}
