package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ketankishore27/inventory-management/cmd"

	"github.com/joho/godotenv"
)

func init() {
	// Load .env file, but don't overwrite system environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found, falling back to system environment variables.")
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cmd.Execute(ctx); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}
