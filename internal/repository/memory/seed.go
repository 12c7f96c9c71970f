package memory

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/roamly/trip-go/internal/domain"
)

//go:embed seed.json
var seedJSON []byte

// SeedOfferings returns the built-in catalog.
func SeedOfferings() ([]domain.Offering, error) {
	const op = "memory.SeedOfferings"

	offerings, err := decodeSeed(seedJSON)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return offerings, nil
}

// LoadOfferings reads a catalog seed from path, falling back to the built-in
// catalog when path is empty.
func LoadOfferings(path string) ([]domain.Offering, error) {
	const op = "memory.LoadOfferings"

	if path == "" {
		return SeedOfferings()
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	offerings, err := decodeSeed(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", op, path, err)
	}

	return offerings, nil
}

func decodeSeed(b []byte) ([]domain.Offering, error) {
	var offerings []domain.Offering
	if err := json.Unmarshal(b, &offerings); err != nil {
		return nil, err
	}

	return offerings, nil
}
