package core

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

// GetSeed receives a seed value for random number generation from the QUADSOLVE_SEED environment variable.
func GetSeed() int64 {
	seedStr := os.Getenv("QUADSOLVE_SEED")
	if seedStr != "" {
		if seed, err := strconv.ParseInt(seedStr, 10, 64); err == nil {
			log.Debug().Msgf("Using seed from QUADSOLVE_SEED value: %d", seed)
			return seed
		}
		log.Warn().Msgf("Failed to parse QUADSOLVE_SEED value: %s", seedStr)
	}

	seed := time.Now().UnixNano()
	log.Debug().Msgf("Using current time as seed: %d", seed)
	return seed
}
