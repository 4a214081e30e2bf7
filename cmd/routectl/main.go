package main

import (
	"route-recommendation-service/internal/cli"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional for the CLI
	_ = godotenv.Load()
	cli.Execute()
}
