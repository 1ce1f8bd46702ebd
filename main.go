package main

import (
	"os"

	"github.com/spigell/hr-agent/cmd"

	"github.com/joho/godotenv"
)

func main() {
	// A .env file is optional; it can set HR_AGENT_DATA_DIR during development.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
