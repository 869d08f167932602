package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/jayempx/vcard2qr/internal/cli"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := cli.Execute(); err != nil {
		log.Fatal(err)
	}
}
