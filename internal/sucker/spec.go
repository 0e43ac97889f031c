// Package sucker lays out surface decoration instances in row/column
// patterns along a tentacle body and builds their cup meshes.
package sucker

import (
	"errors"
	"fmt"
)

// ErrConfig reports an out-of-range or inconsistent sucker spec.
var ErrConfig = errors.New("invalid sucker spec")

// Field ranges enforced by Validate.
const (
	MinRows    = 2
	MaxRows    = 8
	MinColumns = 4
	MaxColumns = 12
)

// Pattern selects the row layout along the length.
type Pattern int

const (
	Uniform Pattern = iota
	Alternating
	Random
	DenseBase
)

// String returns the config-file name of the pattern.
func (p Pattern) String() string {
	switch p {
	case Uniform:
		return "uniform"
	case Alternating:
		return "alternating"
	case Random:
		return "random"
	case DenseBase:
		return "dense_base"
	default:
		return fmt.Sprintf("Pattern(%d)", int(p))
	}
}

// ParsePattern converts a config-file name to a Pattern.
func ParsePattern(s string) (Pattern, error) {
	switch s {
	case "uniform":
		return Uniform, nil
	case "alternating":
		return Alternating, nil
	case "random":
		return Random, nil
	case "dense_base":
		return DenseBase, nil
	default:
		return Uniform, fmt.Errorf("unknown sucker pattern %q", s)
	}
}

// Spec configures sucker placement for one tentacle.
type Spec struct {
	Enabled bool
	Rows    int // [2, 8]
	Columns int // [4, 12]

	BaseSize      float32 // sucker size near the base
	TipSize       float32 // sucker size near the tip, must be < BaseSize
	SizeVariation float32 // per-instance size jitter fraction

	CupDepth  float32 // cavity depth as a fraction of size
	RimWidth  float32 // rim ring width as a fraction of size
	Sharpness float32 // rim lip steepness, [0, 1]

	Pattern     Pattern
	StartOffset float32 // normalized start along the length
	EndOffset   float32 // normalized end along the length
	Seed        int64
}

// Validate checks every field range. All violations wrap ErrConfig.
// A disabled spec is always valid.
func (s Spec) Validate() error {
	if !s.Enabled {
		return nil
	}
	if s.Rows < MinRows || s.Rows > MaxRows {
		return fmt.Errorf("%w: rows %d outside [%d, %d]", ErrConfig, s.Rows, MinRows, MaxRows)
	}
	if s.Columns < MinColumns || s.Columns > MaxColumns {
		return fmt.Errorf("%w: columns %d outside [%d, %d]", ErrConfig, s.Columns, MinColumns, MaxColumns)
	}
	if s.BaseSize <= 0 {
		return fmt.Errorf("%w: base size %v must be positive", ErrConfig, s.BaseSize)
	}
	if s.TipSize <= 0 || s.TipSize >= s.BaseSize {
		return fmt.Errorf("%w: tip size %v must be in (0, base size %v)", ErrConfig, s.TipSize, s.BaseSize)
	}
	if s.SizeVariation < 0 || s.SizeVariation > 1 {
		return fmt.Errorf("%w: size variation %v outside [0, 1]", ErrConfig, s.SizeVariation)
	}
	if s.StartOffset < 0 || s.EndOffset > 1 || s.StartOffset >= s.EndOffset {
		return fmt.Errorf("%w: offsets [%v, %v] must satisfy 0 <= start < end <= 1", ErrConfig, s.StartOffset, s.EndOffset)
	}
	return nil
}
