// Package preset resolves named yaml preset documents into the value
// objects the core consumes. The core itself never reads files; this is
// the configuration-loading collaborator in front of it.
package preset

import (
	"errors"
	"fmt"

	"github.com/bretbouchard/tentaclegen/internal/body"
	"github.com/bretbouchard/tentaclegen/internal/lod"
	"github.com/bretbouchard/tentaclegen/internal/sucker"
	"github.com/bretbouchard/tentaclegen/internal/taper"
)

// ErrPreset reports a preset document that cannot be resolved.
var ErrPreset = errors.New("invalid preset")

// Document is the on-disk shape of one named preset.
type Document struct {
	Tentacle TentacleDoc `yaml:"tentacle"`
	Suckers  SuckerDoc   `yaml:"suckers"`
	LODs     []LevelDoc  `yaml:"lods"`
}

// TentacleDoc mirrors body.Spec in yaml form.
type TentacleDoc struct {
	Name       string  `yaml:"name"`
	Length     float32 `yaml:"length"`
	BaseRadius float32 `yaml:"base_radius"`
	TipRadius  float32 `yaml:"tip_radius"`
	Segments   int     `yaml:"segments"`
	Resolution int     `yaml:"resolution"`

	Profile       string     `yaml:"profile"`
	ProfilePoints []PointDoc `yaml:"profile_points"`

	TwistAngle       float32 `yaml:"twist_angle"`
	SegmentVariation float32 `yaml:"segment_variation"`
	Subdivisions     int     `yaml:"subdivisions"`
	Seed             int64   `yaml:"seed"`
}

// PointDoc is one custom profile control point.
type PointDoc struct {
	Position float32 `yaml:"position"`
	Radius   float32 `yaml:"radius"`
}

// SuckerDoc mirrors sucker.Spec in yaml form.
type SuckerDoc struct {
	Enabled       bool    `yaml:"enabled"`
	Rows          int     `yaml:"rows"`
	Columns       int     `yaml:"columns"`
	BaseSize      float32 `yaml:"base_size"`
	TipSize       float32 `yaml:"tip_size"`
	SizeVariation float32 `yaml:"size_variation"`
	CupDepth      float32 `yaml:"cup_depth"`
	RimWidth      float32 `yaml:"rim_width"`
	Sharpness     float32 `yaml:"sharpness"`
	Pattern       string  `yaml:"pattern"`
	StartOffset   float32 `yaml:"start_offset"`
	EndOffset     float32 `yaml:"end_offset"`
	Seed          int64   `yaml:"seed"`
}

// LevelDoc mirrors lod.Level in yaml form.
type LevelDoc struct {
	Name       string  `yaml:"name"`
	Ratio      float32 `yaml:"ratio"`
	ScreenSize float32 `yaml:"screen_size"`
}

// Resolved holds the validated value objects from one document.
type Resolved struct {
	Body    body.Spec
	Suckers sucker.Spec
	LODs    []lod.Level
}

// Resolve validates the document and converts it into core value objects.
func (d *Document) Resolve() (*Resolved, error) {
	profileKind, err := taper.ParseKind(d.Tentacle.Profile)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPreset, err)
	}

	points := make([]taper.ControlPoint, 0, len(d.Tentacle.ProfilePoints))
	for _, p := range d.Tentacle.ProfilePoints {
		points = append(points, taper.ControlPoint{Position: p.Position, RadiusFactor: p.Radius})
	}

	bodySpec := body.Spec{
		Name:             d.Tentacle.Name,
		Length:           d.Tentacle.Length,
		BaseRadius:       d.Tentacle.BaseRadius,
		TipRadius:        d.Tentacle.TipRadius,
		Segments:         d.Tentacle.Segments,
		Resolution:       d.Tentacle.Resolution,
		Profile:          profileKind,
		ProfilePoints:    points,
		TwistAngle:       d.Tentacle.TwistAngle,
		SegmentVariation: d.Tentacle.SegmentVariation,
		Subdivisions:     d.Tentacle.Subdivisions,
		Seed:             d.Tentacle.Seed,
	}
	if err := bodySpec.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPreset, err)
	}

	suckerSpec := sucker.Spec{
		Enabled:       d.Suckers.Enabled,
		Rows:          d.Suckers.Rows,
		Columns:       d.Suckers.Columns,
		BaseSize:      d.Suckers.BaseSize,
		TipSize:       d.Suckers.TipSize,
		SizeVariation: d.Suckers.SizeVariation,
		CupDepth:      d.Suckers.CupDepth,
		RimWidth:      d.Suckers.RimWidth,
		Sharpness:     d.Suckers.Sharpness,
		StartOffset:   d.Suckers.StartOffset,
		EndOffset:     d.Suckers.EndOffset,
		Seed:          d.Suckers.Seed,
	}
	if d.Suckers.Enabled {
		pattern, err := sucker.ParsePattern(d.Suckers.Pattern)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrPreset, err)
		}
		suckerSpec.Pattern = pattern
		if err := suckerSpec.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrPreset, err)
		}
	}

	levels := make([]lod.Level, 0, len(d.LODs))
	for _, l := range d.LODs {
		levels = append(levels, lod.Level{Name: l.Name, Ratio: l.Ratio, ScreenSize: l.ScreenSize})
	}
	if len(levels) == 0 {
		levels = lod.DefaultChain()
	}

	return &Resolved{Body: bodySpec, Suckers: suckerSpec, LODs: levels}, nil
}
