package shapekey

import (
	"errors"
	"testing"

	"github.com/bretbouchard/tentaclegen/internal/body"
	"github.com/bretbouchard/tentaclegen/internal/taper"
	vmath "github.com/bretbouchard/tentaclegen/pkg/math"
)

func testVerts(t *testing.T) []vmath.Vec3 {
	t.Helper()
	buf, err := body.Generate(body.Spec{
		Length:     1.0,
		BaseRadius: 0.04,
		TipRadius:  0.01,
		Segments:   20,
		Resolution: 16,
		Profile:    taper.Organic,
		Seed:       42,
	})
	if err != nil {
		t.Fatalf("generating test body: %v", err)
	}
	return buf.Positions
}

func TestIdentityParams(t *testing.T) {
	verts := testVerts(t)
	d, err := NewDeformer(verts)
	if err != nil {
		t.Fatal(err)
	}
	res := d.Apply(verts, Params{DiameterScale: 1, LengthScale: 1})
	for i, disp := range res.Displacements {
		if disp.Length() > 1e-6 {
			t.Fatalf("identity params displaced vertex %d by %v", i, disp)
		}
	}
	if res.MaxDisplacement > 1e-6 {
		t.Errorf("MaxDisplacement = %v, want 0", res.MaxDisplacement)
	}
}

func TestCompressShrinksRadially(t *testing.T) {
	verts := testVerts(t)
	d, err := NewDeformer(verts)
	if err != nil {
		t.Fatal(err)
	}
	res := d.Apply(verts, Params{DiameterScale: 0.5, LengthScale: 1})
	for i, v := range verts {
		moved := v.Add(res.Displacements[i])
		if moved.XY().Length() > v.XY().Length()+1e-6 {
			t.Fatalf("vertex %d moved outward under compression", i)
		}
	}
	if res.VolumeChangePct >= 0 {
		t.Errorf("VolumeChangePct = %v, want negative under compression", res.VolumeChangePct)
	}
}

func TestVolumePreservationBulge(t *testing.T) {
	verts := testVerts(t)
	d, err := NewDeformer(verts)
	if err != nil {
		t.Fatal(err)
	}
	plain := d.Apply(verts, Params{DiameterScale: 0.5, LengthScale: 1})
	preserved := d.Apply(verts, Params{DiameterScale: 0.5, LengthScale: 1, VolumePreservation: 1})
	// The preserved pose keeps more volume than the plain compression.
	if preserved.VolumeChangePct <= plain.VolumeChangePct {
		t.Errorf("preserved volume change %v not above plain %v",
			preserved.VolumeChangePct, plain.VolumeChangePct)
	}
	// Expansion never triggers the bulge.
	expanded := d.Apply(verts, Params{DiameterScale: 1.25, LengthScale: 1, VolumePreservation: 1})
	expandedPlain := d.Apply(verts, Params{DiameterScale: 1.25, LengthScale: 1})
	if expanded.MaxDisplacement != expandedPlain.MaxDisplacement {
		t.Error("volume preservation changed an expansion pose")
	}
}

func TestSqueezeIsLocal(t *testing.T) {
	verts := testVerts(t)
	d, err := NewDeformer(verts)
	if err != nil {
		t.Fatal(err)
	}
	res := d.Apply(verts, SqueezeMid.Params())
	var maxAtCenter, maxAtBase float32
	for i, v := range verts {
		l := res.Displacements[i].Length()
		switch {
		case v.Z > 0.45 && v.Z < 0.55:
			if l > maxAtCenter {
				maxAtCenter = l
			}
		case v.Z < 0.05:
			if l > maxAtBase {
				maxAtBase = l
			}
		}
	}
	if maxAtCenter <= maxAtBase {
		t.Errorf("squeeze at center (%v) not stronger than at base (%v)", maxAtCenter, maxAtBase)
	}
}

func TestCurlLeavesProximalAlone(t *testing.T) {
	verts := testVerts(t)
	d, err := NewDeformer(verts)
	if err != nil {
		t.Fatal(err)
	}
	res := d.Apply(verts, CurlTip.Params())
	for i, v := range verts {
		l := res.Displacements[i].Length()
		if v.Z < 0.55 && l > 1e-6 {
			t.Fatalf("curl_tip displaced proximal vertex %d at z=%v by %v", i, v.Z, l)
		}
		if v.Z > 0.99 && l < 1e-4 {
			t.Fatalf("curl_tip left tip vertex %d unmoved", i)
		}
	}
}

func TestLengthScaleMovesTipOnly(t *testing.T) {
	verts := testVerts(t)
	d, err := NewDeformer(verts)
	if err != nil {
		t.Fatal(err)
	}
	res := d.Apply(verts, Params{DiameterScale: 1, LengthScale: 1.2})
	for i, v := range verts {
		dz := res.Displacements[i].Z
		want := 0.2 * v.Z // (lengthScale-1) * t * axisLen with axisLen 1
		if vmath.Abs(dz-want) > 1e-4 {
			t.Fatalf("vertex %d axial displacement = %v, want %v", i, dz, want)
		}
	}
}

func TestGenerateAll(t *testing.T) {
	verts := testVerts(t)
	d, err := NewDeformer(verts)
	if err != nil {
		t.Fatal(err)
	}
	results := d.GenerateAll(verts)
	if len(results) != len(Presets)-1 {
		t.Errorf("result count = %d, want %d", len(results), len(Presets)-1)
	}
	if _, ok := results[Base]; ok {
		t.Error("GenerateAll produced a result for the base pose")
	}
	for preset, res := range results {
		if len(res.Displacements) != len(verts) {
			t.Errorf("%v: displacement count = %d, want %d", preset, len(res.Displacements), len(verts))
		}
		if res.MaxDisplacement <= 0 {
			t.Errorf("%v: MaxDisplacement = %v, want > 0", preset, res.MaxDisplacement)
		}
	}
}

func TestNewDeformerRejectsEmpty(t *testing.T) {
	if _, err := NewDeformer(nil); !errors.Is(err, ErrNoGeometry) {
		t.Errorf("NewDeformer(nil) error = %v, want ErrNoGeometry", err)
	}
	flat := []vmath.Vec3{{X: 1}, {X: 2}}
	if _, err := NewDeformer(flat); !errors.Is(err, ErrNoGeometry) {
		t.Errorf("NewDeformer(flat cloud) error = %v, want ErrNoGeometry", err)
	}
}

func TestPresetNames(t *testing.T) {
	seen := make(map[string]bool)
	for _, p := range Presets {
		name := p.String()
		if seen[name] {
			t.Errorf("duplicate preset name %q", name)
		}
		seen[name] = true
	}
}
