package main

import (
	"log"

	"github.com/joho/godotenv"
)

func main() {
	// Missing .env is fine; the environment may carry everything.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("error: %v", err)
	}
}
