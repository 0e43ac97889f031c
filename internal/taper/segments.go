package taper

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrSegments reports an invalid segment distribution request.
var ErrSegments = errors.New("invalid segment distribution")

// jitterMargin keeps perturbed stations 10% of a segment away from their
// uniform neighbors so segments never degenerate.
const jitterMargin = 0.1

// MaxVariation is the largest allowed jitter magnitude.
const MaxVariation = 0.2

// Distribute returns count+1 monotonically increasing station positions
// spanning [0, length]. With uniform set the stations are evenly spaced.
// Otherwise each interior station is perturbed from the uniform baseline by
// U(-variation, variation) of a segment length, then clamped between its
// uniform neighbors minus a safety margin. Output is deterministic per seed.
func Distribute(count int, length float32, uniform bool, variation float32, seed int64) ([]float32, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: count %d < 1", ErrSegments, count)
	}
	if length <= 0 {
		return nil, fmt.Errorf("%w: length %v <= 0", ErrSegments, length)
	}
	if variation < 0 || variation > MaxVariation {
		return nil, fmt.Errorf("%w: variation %v outside [0, %v]", ErrSegments, variation, float32(MaxVariation))
	}

	segLen := length / float32(count)
	stations := make([]float32, count+1)
	for i := range stations {
		stations[i] = float32(i) * segLen
	}
	// Pin the last station exactly, free of accumulation error.
	stations[count] = length

	if uniform || variation == 0 {
		return stations, nil
	}

	rng := rand.New(rand.NewSource(seed))
	for i := 1; i < count; i++ {
		base := float32(i) * segLen
		offset := (rng.Float32()*2 - 1) * variation * segLen
		lo := base - segLen*(1-jitterMargin)
		hi := base + segLen*(1-jitterMargin)
		pos := base + offset
		if pos < lo {
			pos = lo
		}
		if pos > hi {
			pos = hi
		}
		stations[i] = pos
	}
	return stations, nil
}
