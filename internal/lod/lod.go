// Package lod produces reduced-count mesh summaries at fixed decimation
// ratios for distance-based level-of-detail switching.
package lod

import (
	"errors"
	"fmt"
	gomath "math"

	"github.com/bretbouchard/tentaclegen/internal/mesh"
)

// ErrLevel reports an invalid LOD level configuration.
var ErrLevel = errors.New("invalid LOD level")

// minCount is the floor for decimated vertex and triangle counts.
const minCount = 4

// Level configures one LOD variant.
type Level struct {
	Name       string
	Ratio      float32 // decimation ratio, (0, 1]
	ScreenSize float32 // host switching threshold
}

// Result summarizes one generated LOD variant.
type Result struct {
	Name          string
	VertexCount   int
	TriangleCount int
	OK            bool
}

// MeshStats is the export metadata handed to the packaging stage: raw
// counts plus which optional channels the mesh carries.
type MeshStats struct {
	VertexCount     int
	TriangleCount   int
	HasMorphTargets bool
	HasSkeleton     bool
}

// StatsOf summarizes a mesh buffer.
func StatsOf(buf *mesh.Buffer, morphTargets, skeleton bool) MeshStats {
	return MeshStats{
		VertexCount:     buf.VertexCount(),
		TriangleCount:   buf.TriangleCount(),
		HasMorphTargets: morphTargets,
		HasSkeleton:     skeleton,
	}
}

// DefaultChain returns the standard four-level chain.
func DefaultChain() []Level {
	return []Level{
		{Name: "LOD0", Ratio: 1.0, ScreenSize: 1.0},
		{Name: "LOD1", Ratio: 0.5, ScreenSize: 0.5},
		{Name: "LOD2", Ratio: 0.25, ScreenSize: 0.25},
		{Name: "LOD3", Ratio: 0.1, ScreenSize: 0.1},
	}
}

// Generate produces one result per level, in level order. A ratio of 1.0
// passes the source counts through unchanged; lower ratios report
// max(4, round(count*ratio)), clamped so counts never increase across
// ascending levels.
func Generate(stats MeshStats, levels []Level) ([]Result, error) {
	if len(levels) == 0 {
		return nil, fmt.Errorf("%w: no levels", ErrLevel)
	}
	results := make([]Result, 0, len(levels))
	prevVerts := stats.VertexCount
	prevTris := stats.TriangleCount
	for _, level := range levels {
		if level.Ratio <= 0 || level.Ratio > 1 {
			return nil, fmt.Errorf("%w: %s ratio %v outside (0, 1]", ErrLevel, level.Name, level.Ratio)
		}

		verts := stats.VertexCount
		tris := stats.TriangleCount
		if level.Ratio < 1 {
			verts = decimate(stats.VertexCount, level.Ratio)
			tris = decimate(stats.TriangleCount, level.Ratio)
		}
		if verts > prevVerts {
			verts = prevVerts
		}
		if tris > prevTris {
			tris = prevTris
		}
		prevVerts = verts
		prevTris = tris

		results = append(results, Result{
			Name:          level.Name,
			VertexCount:   verts,
			TriangleCount: tris,
			OK:            true,
		})
	}
	return results, nil
}

func decimate(count int, ratio float32) int {
	reduced := int(gomath.Round(float64(count) * float64(ratio)))
	if reduced < minCount {
		return minCount
	}
	return reduced
}
