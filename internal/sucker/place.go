package sucker

import (
	gomath "math"
	"math/rand"
	"sort"

	vmath "github.com/bretbouchard/tentaclegen/pkg/math"
)

// denseBaseExponent biases dense-base row positions toward the base.
const denseBaseExponent = 1.5

// Instance is one placed sucker. Instances are produced in bulk by Place
// and handed to a mesh builder; they are not retained afterwards.
type Instance struct {
	Position vmath.Vec3
	Normal   vmath.Vec3 // outward radial unit vector, zero Z component
	Size     float32
	Row      int
	Column   int
}

// Place computes sucker instances for a tentacle of the given length.
// radiusAt maps normalized position to the body radius at that position.
// A disabled spec yields an empty list. Output is deterministic per seed.
func Place(spec Spec, length float32, radiusAt func(float32) float32) ([]Instance, error) {
	if !spec.Enabled {
		return nil, nil
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(spec.Seed))
	rowTs := rowPositions(spec, rng)

	instances := make([]Instance, 0, spec.Rows*spec.Columns)
	colStep := 2 * gomath.Pi / float64(spec.Columns)
	for row, rowT := range rowTs {
		radius := radiusAt(rowT)

		// Alternating pattern shifts every other row by half a column.
		angleOffset := float64(0)
		if spec.Pattern == Alternating && row%2 == 1 {
			angleOffset = colStep / 2
		}

		for col := 0; col < spec.Columns; col++ {
			angle := angleOffset + float64(col)*colStep
			cos := float32(gomath.Cos(angle))
			sin := float32(gomath.Sin(angle))

			size := vmath.Lerp(spec.BaseSize, spec.TipSize, rowT)
			if spec.SizeVariation > 0 {
				size *= 1 + (rng.Float32()*2-1)*spec.SizeVariation
			}

			instances = append(instances, Instance{
				Position: vmath.Vec3{X: radius * cos, Y: radius * sin, Z: rowT * length},
				Normal:   vmath.Vec3{X: cos, Y: sin, Z: 0},
				Size:     size,
				Row:      row,
				Column:   col,
			})
		}
	}
	return instances, nil
}

// rowPositions returns one normalized position per row inside
// [StartOffset, EndOffset], ordered base to tip.
func rowPositions(spec Spec, rng *rand.Rand) []float32 {
	span := spec.EndOffset - spec.StartOffset
	positions := make([]float32, spec.Rows)

	switch spec.Pattern {
	case Random:
		for i := range positions {
			positions[i] = spec.StartOffset + rng.Float32()*span
		}
		sort.Slice(positions, func(i, j int) bool { return positions[i] < positions[j] })
	case DenseBase:
		for i := range positions {
			u := float32(i) / float32(spec.Rows-1)
			biased := float32(gomath.Pow(float64(u), denseBaseExponent))
			positions[i] = spec.StartOffset + span*biased
		}
	default: // Uniform and Alternating share evenly spaced rows.
		for i := range positions {
			u := float32(i) / float32(spec.Rows-1)
			positions[i] = spec.StartOffset + span*u
		}
	}
	return positions
}
