package lod

import (
	"errors"
	"testing"

	"github.com/bretbouchard/tentaclegen/internal/mesh"
	vmath "github.com/bretbouchard/tentaclegen/pkg/math"
)

func sourceStats() MeshStats {
	return MeshStats{VertexCount: 336, TriangleCount: 640}
}

func TestGenerateDefaultChain(t *testing.T) {
	results, err := Generate(sourceStats(), DefaultChain())
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if len(results) != 4 {
		t.Fatalf("result count = %d, want 4", len(results))
	}

	// Level 0 passes source counts through.
	if results[0].VertexCount != 336 || results[0].TriangleCount != 640 {
		t.Errorf("LOD0 counts = %d/%d, want 336/640", results[0].VertexCount, results[0].TriangleCount)
	}
	if results[1].VertexCount != 168 {
		t.Errorf("LOD1 vertex count = %d, want 168", results[1].VertexCount)
	}
	if results[2].VertexCount != 84 {
		t.Errorf("LOD2 vertex count = %d, want 84", results[2].VertexCount)
	}

	for i, r := range results {
		if !r.OK {
			t.Errorf("result %d not OK", i)
		}
	}
}

func TestCountsNonIncreasing(t *testing.T) {
	results, err := Generate(sourceStats(), DefaultChain())
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(results); i++ {
		if results[i].VertexCount > results[i-1].VertexCount {
			t.Errorf("vertex count increased at level %d: %d > %d",
				i, results[i].VertexCount, results[i-1].VertexCount)
		}
		if results[i].TriangleCount > results[i-1].TriangleCount {
			t.Errorf("triangle count increased at level %d: %d > %d",
				i, results[i].TriangleCount, results[i-1].TriangleCount)
		}
	}
}

func TestCountFloor(t *testing.T) {
	tiny := MeshStats{VertexCount: 10, TriangleCount: 16}
	results, err := Generate(tiny, DefaultChain())
	if err != nil {
		t.Fatal(err)
	}
	last := results[len(results)-1]
	if last.VertexCount != 4 {
		t.Errorf("tiny mesh LOD3 vertex count = %d, want 4 (floor)", last.VertexCount)
	}
	if last.TriangleCount != 4 {
		t.Errorf("tiny mesh LOD3 triangle count = %d, want 4 (floor)", last.TriangleCount)
	}
}

func TestGenerateRejectsBadRatio(t *testing.T) {
	for _, ratio := range []float32{0, -0.5, 1.5} {
		_, err := Generate(sourceStats(), []Level{{Name: "bad", Ratio: ratio}})
		if !errors.Is(err, ErrLevel) {
			t.Errorf("ratio %v: error = %v, want ErrLevel", ratio, err)
		}
	}
	if _, err := Generate(sourceStats(), nil); !errors.Is(err, ErrLevel) {
		t.Errorf("empty levels: error = %v, want ErrLevel", err)
	}
}

func TestStatsOf(t *testing.T) {
	buf := mesh.NewBuffer(4, 1)
	for i := 0; i < 4; i++ {
		buf.AddVertex(vmath.Vec3{X: float32(i)})
	}
	buf.AddQuad(0, 1, 2, 3)

	stats := StatsOf(buf, true, false)
	if stats.VertexCount != 4 {
		t.Errorf("VertexCount = %d, want 4", stats.VertexCount)
	}
	if stats.TriangleCount != 2 {
		t.Errorf("TriangleCount = %d, want 2 (quad as two tris)", stats.TriangleCount)
	}
	if !stats.HasMorphTargets || stats.HasSkeleton {
		t.Error("channel flags not carried through")
	}
}
