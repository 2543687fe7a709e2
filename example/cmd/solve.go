//go:build ignore
// +build ignore

package main

import (
	"context"
	"os"

	"github.com/patrikhermansson/quadsolve/example"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Set the logger to output to the console.
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	SolveDefault()
	SolveFewStars()
}

func SolveDefault() {
	sc := example.DefaultScenario()
	out, err := sc.Run(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("Solve failed")
	}
	out.Report(os.Stdout, 10)
}

// SolveFewStars images a sparse sky with heavy dropout and distractors.
func SolveFewStars() {
	sc := example.DefaultScenario()
	sc.Sky.Stars = 600
	sc.Field.Dropout = 0.2
	sc.Field.Distractors = 15
	out, err := sc.Run(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("Solve failed")
	}
	out.Report(os.Stdout, 10)
}
