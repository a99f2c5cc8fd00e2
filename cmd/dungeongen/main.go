// Package main is the entry point for dungeongen.
package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	setupOTelEnv()

	rootCmd, a := newRootCmd()
	if err := execute(rootCmd, a); err != nil {
		os.Exit(1)
	}
}

// setupOTelEnv maps our own env variables onto the standard OTEL_* ones,
// without overriding values that are already set.
func setupOTelEnv() {
	mapping := map[string]string{
		"DUNGEONGEN_OTLP_ENDPOINT": "OTEL_EXPORTER_OTLP_ENDPOINT",
		"DUNGEONGEN_OTLP_HEADERS":  "OTEL_EXPORTER_OTLP_HEADERS",
	}
	for from, to := range mapping {
		v := os.Getenv(from)
		if v == "" || os.Getenv(to) != "" {
			continue
		}
		os.Setenv(to, v)
	}
}
