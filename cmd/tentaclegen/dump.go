package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bretbouchard/tentaclegen/internal/lod"
	"github.com/bretbouchard/tentaclegen/internal/mesh"
	"github.com/bretbouchard/tentaclegen/internal/shapekey"
	"github.com/bretbouchard/tentaclegen/internal/sucker"
	vmath "github.com/bretbouchard/tentaclegen/pkg/math"
)

// meshDump is the raw-buffer JSON handed to host importers: plain arrays
// and counts, no interchange-format encoding.
type meshDump struct {
	Name      string                  `json:"name"`
	Vertices  [][3]float32            `json:"vertices"`
	Quads     [][4]uint32             `json:"quads"`
	Tris      [][3]uint32             `json:"tris,omitempty"`
	Suckers   []suckerDump            `json:"suckers,omitempty"`
	ShapeKeys map[string][][3]float32 `json:"shape_keys,omitempty"`
	Bones     [][3]float32            `json:"bones,omitempty"`
	Stats     lod.MeshStats           `json:"stats"`
	LODs      []lod.Result            `json:"lods"`
}

type suckerDump struct {
	Position [3]float32 `json:"position"`
	Normal   [3]float32 `json:"normal"`
	Size     float32    `json:"size"`
	Row      int        `json:"row"`
	Column   int        `json:"column"`
}

func writeDump(dir, name string, pretty bool, buf *mesh.Buffer, instances []sucker.Instance,
	keys map[shapekey.Preset]*shapekey.Result, bones []vmath.Vec3,
	stats lod.MeshStats, lods []lod.Result) (string, error) {

	dump := meshDump{
		Name:     name,
		Vertices: vecsToArrays(buf.Positions),
		Quads:    buf.Quads,
		Tris:     buf.Tris,
		Bones:    vecsToArrays(bones),
		Stats:    stats,
		LODs:     lods,
	}

	for _, inst := range instances {
		dump.Suckers = append(dump.Suckers, suckerDump{
			Position: vecToArray(inst.Position),
			Normal:   vecToArray(inst.Normal),
			Size:     inst.Size,
			Row:      inst.Row,
			Column:   inst.Column,
		})
	}

	if len(keys) > 0 {
		dump.ShapeKeys = make(map[string][][3]float32, len(keys))
		for preset, res := range keys {
			dump.ShapeKeys[preset.String()] = vecsToArrays(res.Displacements)
		}
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating output dir: %w", err)
	}

	var data []byte
	var err error
	if pretty {
		data, err = json.MarshalIndent(dump, "", "  ")
	} else {
		data, err = json.Marshal(dump)
	}
	if err != nil {
		return "", fmt.Errorf("encoding dump: %w", err)
	}

	path := filepath.Join(dir, name+".json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing dump: %w", err)
	}
	return path, nil
}

func vecToArray(v vmath.Vec3) [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

func vecsToArrays(vs []vmath.Vec3) [][3]float32 {
	out := make([][3]float32, len(vs))
	for i, v := range vs {
		out[i] = vecToArray(v)
	}
	return out
}
