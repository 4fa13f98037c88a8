package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/dmarques/skilltrack/internal/cli"
	"github.com/dmarques/skilltrack/internal/config"
	"github.com/dmarques/skilltrack/internal/logging"
)

func main() {

	// Load .env file if it exists; config reads the environment afterwards.
	_ = godotenv.Load()

	cfg := config.LoadConfig()
	logger := logging.NewDefault()

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	// Saves replace the whole file, so an interrupt between operations
	// cannot leave a torn document; just say goodbye and stop.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		fmt.Println("\nInterrupted, exiting.")
		os.Exit(0)
	}()

	app.Run(context.Background())
}
