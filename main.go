package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/patrikhermansson/quadsolve/cmd"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// main is the entry point of the application.
// Logging levels come from the DEBUG_QUADSOLVE environment variable (see core).
// An interrupt cancels the running solve, which then reports its best candidate.
func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// This block sets up a go routine to listen for an interrupt signal which will stop the solve
	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, os.Interrupt)
	go listenForInterrupt(stopChan, cancel)

	// Program entry point
	if err := cmd.Execute(ctx, os.Args[1:], os.Stdout); err != nil {
		log.Error().Err(err).Msg("quadsolve failed")
		os.Exit(1)
	}
}

// listenForInterrupt waits for an interrupt signal and cancels the solve when it is received.
func listenForInterrupt(stopChan chan os.Signal, cancel context.CancelFunc) {
	<-stopChan
	log.Warn().Msg("Interrupt signal received. Stopping...")
	cancel()
}
