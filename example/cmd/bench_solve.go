//go:build ignore
// +build ignore

package main

import (
	"context"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/patrikhermansson/quadsolve/example"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Set the logger to output to the console.
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Start the pprof HTTP server on port 6060.
	// This will expose profiling endpoints at /debug/pprof/
	go func() {
		log.Info().Msg("Starting pprof server on :6060")
		if err := http.ListenAndServe("localhost:6060", nil); err != nil {
			log.Error().Err(err).Msg("pprof server failed")
		}
	}()

	sc := example.DefaultScenario()
	sc.Solver.Workers = 1
	sum, err := example.RunTrials(context.Background(), sc, 50, 0, os.Stderr)
	if err != nil {
		log.Fatal().Err(err).Msg("Trials failed")
	}
	fmt.Printf("Accepted %d of %d trials\n", sum.Accepted, sum.Trials)
	fmt.Printf("Average recall: %.3f\n", sum.MeanRecall)
	fmt.Printf("Average solve time: %v\n", sum.MeanElapsed)
	fmt.Printf("Overall runtime: %v\n", sum.Elapsed)
}
