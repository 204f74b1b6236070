package config

import (
	"fmt"
	"hash/maphash"
	"os"
	"strconv"
)

func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}

// Seed returns MINES_SEED when set, otherwise a fresh random seed.
func Seed() (uint64, error) {
	seedStr, ok := os.LookupEnv(envPrefix + "SEED")
	if !ok {
		return new(maphash.Hash).Sum64(), nil
	}
	seed, err := strconv.ParseUint(seedStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("unable to parse %sSEED: %w", envPrefix, err)
	}
	return seed, nil
}
